package energy

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// density of the Martian atmosphere, kg/m3
func get_rho_a_mars() float64 {
	return 0.02
}

// Wind turbine on the Martian surface.
type WindTurbine struct {
	a_swp float64   // swept area, m2
	eta   float64   // conversion efficiency, -
	v_ns  []float64 // wind speed, m/s, [n]
}

/*
Create a wind turbine and draw the per-sol wind speeds for one Martian
year.

	Args:
		r_bld: blade length, m
		seed: random seed

	Returns:
		WindTurbine
*/
func NewWindTurbine(r_bld float64, seed uint64) *WindTurbine {
	src := rand.NewSource(seed)

	// conversion efficiency, drawn once per turbine
	eta := distuv.Uniform{Min: 0.30, Max: 0.50, Src: src}.Rand()

	// surface wind speed, m/s
	dist_v := distuv.Uniform{Min: 0.0, Max: 7.0, Src: src}
	v_ns := make([]float64, get_n_sol())
	for n := range v_ns {
		v_ns[n] = dist_v.Rand()
	}

	return &WindTurbine{
		a_swp: get_a_swp(r_bld),
		eta:   eta,
		v_ns:  v_ns,
	}
}

// conversion efficiency, -
func (w *WindTurbine) Efficiency() float64 {
	return w.eta
}

/*
Calculate the energy produced on each sol of the Martian year.

	Returns:
		produced energy, kJ, [n]
*/
func (w *WindTurbine) E_ns() []float64 {
	e_ns := make([]float64, len(w.v_ns))
	for n, v := range w.v_ns {
		e_ns[n] = get_p_wnd(w.a_swp, v, w.eta) * get_t_sol() * 0.001
	}
	return e_ns
}

/*
Calculate the swept area of a turbine rotor.

	Args:
		r_bld: blade length, m

	Returns:
		swept area, m2
*/
func get_a_swp(r_bld float64) float64 {
	return math.Pi * r_bld * r_bld
}

/*
Calculate the power extracted from the wind,
P = 1/2 rho A v^3 eta.

	Args:
		a_swp: swept area, m2
		v: wind speed, m/s
		eta: conversion efficiency, -

	Returns:
		extracted power, W
*/
func get_p_wnd(a_swp, v, eta float64) float64 {
	return 0.5 * get_rho_a_mars() * a_swp * v * v * v * eta
}
