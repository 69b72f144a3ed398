package energy

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Photovoltaic array on the Martian surface.
type SolarArray struct {
	a_pnl       float64   // panel area, m2
	eta_pnl_ns  []float64 // panel efficiency, -, [n]
	eta_dust_ns []float64 // dust derating, -, [n]
}

/*
Create a solar array and draw the per-sol panel and dust efficiencies
for one Martian year.

	Args:
		a_pnl: panel area, m2
		seed: random seed

	Returns:
		SolarArray
*/
func NewSolarArray(a_pnl float64, seed uint64) *SolarArray {
	src := rand.NewSource(seed)

	// panel efficiency, mean 0.235, range roughly 0.20 - 0.27
	eta_pnl_ns := _draw_clipped_normal(0.235, (0.27-0.20)/6.0, 0.15, 0.27, get_n_sol(), src)

	// dust derating, mean 0.7, range roughly 0.5 - 0.9
	eta_dust_ns := _draw_clipped_normal(0.7, 0.2/3.0, 0.1, 0.9, get_n_sol(), src)

	return &SolarArray{
		a_pnl:       a_pnl,
		eta_pnl_ns:  eta_pnl_ns,
		eta_dust_ns: eta_dust_ns,
	}
}

/*
Calculate the energy produced on each sol of the Martian year,
E = I A eta_panel eta_dust t.

	Returns:
		produced energy, kJ, [n]
*/
func (s *SolarArray) E_ns() []float64 {
	e_ns := make([]float64, get_n_sol())
	for n := range e_ns {
		e_ns[n] = get_e_sol(s.a_pnl, s.eta_pnl_ns[n], s.eta_dust_ns[n])
	}
	return e_ns
}

/*
Calculate the energy produced by a panel over the generating half of
one sol.

	Args:
		a_pnl: panel area, m2
		eta_pnl: panel efficiency, -
		eta_dust: dust derating, -

	Returns:
		produced energy, kJ
*/
func get_e_sol(a_pnl, eta_pnl, eta_dust float64) float64 {
	// panels generate for half of the sol
	t_gen := get_t_sol() * 0.5

	return get_i_sol_mars() * a_pnl * eta_pnl * eta_dust * t_gen * 0.001
}

// Yearly summary of a per-sol energy series, kJ.
type SeriesSummary struct {
	Mean  float64
	Min   float64
	Max   float64
	Total float64
}

/*
Summarize a per-sol energy series.

	Args:
		e_ns: produced energy, kJ, [n]

	Returns:
		SeriesSummary
*/
func Summarize(e_ns []float64) SeriesSummary {
	return SeriesSummary{
		Mean:  stat.Mean(e_ns, nil),
		Min:   floats.Min(e_ns),
		Max:   floats.Max(e_ns),
		Total: floats.Sum(e_ns),
	}
}

/*
Draw n values from a normal distribution and clip them to physically
plausible bounds.

	Args:
		mu: mean
		sigma: standard deviation
		lo: lower clip bound
		hi: upper clip bound
		n: number of draws
		src: random source

	Returns:
		clipped draws, [n]
*/
func _draw_clipped_normal(mu, sigma, lo, hi float64, n int, src rand.Source) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}

	xs := make([]float64, n)
	for i := range xs {
		x := dist.Rand()
		if x < lo {
			x = lo
		}
		if x > hi {
			x = hi
		}
		xs[i] = x
	}
	return xs
}
