package energy

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Pu-239 spontaneous fission rate, fission/(s kg)
func get_r_fis() float64 {
	return 10.0
}

// energy per fission, J/fission
func get_e_fis() float64 {
	return 3.318e-11
}

/*
Draw a conversion efficiency for the nuclear source. Dust and the thin
atmosphere keep it between 0.20 and 0.25.

	Args:
		seed: random seed

	Returns:
		conversion efficiency, -
*/
func DrawNuclearEfficiency(seed uint64) float64 {
	dist := distuv.Uniform{Min: 0.20, Max: 0.25, Src: rand.NewSource(seed)}
	return dist.Rand()
}

/*
Calculate the thermal power extracted from a Pu-239 mass.

	Args:
		m_pu: Pu-239 mass, kg
		eta: conversion efficiency, -

	Returns:
		extracted power, W
*/
func get_p_nuc(m_pu, eta float64) float64 {
	return get_r_fis() * get_e_fis() * m_pu * eta
}

/*
Calculate the energy extracted from a Pu-239 mass over one sol.

	Args:
		m_pu: Pu-239 mass, kg
		eta: conversion efficiency, -

	Returns:
		extracted energy, kJ
*/
func NuclearEnergyPerSol(m_pu, eta float64) float64 {
	return get_p_nuc(m_pu, eta) * get_t_sol() * 0.001
}
