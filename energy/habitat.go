package energy

import (
	"math"
)

// Energy needed to bring a habitat volume of air from Mars reference
// conditions up to Earth reference conditions.
type HabitatEnergy struct {
	v_hab  float64 // habitat air volume, m3
	n_air  float64 // amount of air, mol
	m_air  float64 // mass of air, kg
	w_prs  float64 // isothermal pressurization work, kJ
	q_heat float64 // sensible heat, kJ
}

/*
Calculate pressurization work and sensible heat for a habitat.

	Args:
		a_hab: pressurized floor area, m2

	Returns:
		HabitatEnergy
*/
func NewHabitatEnergy(a_hab float64) *HabitatEnergy {
	v_hab := get_v_hab(a_hab)
	n_air := get_n_air(v_hab)
	m_air := get_m_air(n_air)

	return &HabitatEnergy{
		v_hab:  v_hab,
		n_air:  n_air,
		m_air:  m_air,
		w_prs:  get_w_prs(n_air),
		q_heat: get_q_heat(m_air),
	}
}

// habitat air volume, m3
func (h *HabitatEnergy) Volume() float64 {
	return h.v_hab
}

// amount of air, mol
func (h *HabitatEnergy) Moles() float64 {
	return h.n_air
}

// mass of air, kg
func (h *HabitatEnergy) AirMass() float64 {
	return h.m_air
}

// isothermal pressurization work, kJ
func (h *HabitatEnergy) PressurizationWork() float64 {
	return h.w_prs
}

// sensible heat, kJ
func (h *HabitatEnergy) HeatingEnergy() float64 {
	return h.q_heat
}

/*
Calculate the habitat air volume from the pressurized floor area.

	Args:
		a_hab: pressurized floor area, m2

	Returns:
		habitat air volume, m3
*/
func get_v_hab(a_hab float64) float64 {
	return a_hab * get_h_hab()
}

/*
Calculate the molar density of air at Earth reference conditions
from the ideal gas law, n/V = p/(R T).

	Returns:
		molar density of air, mol/m3
*/
func get_rho_mol_a() float64 {
	return get_p_earth() * get_p_atm() / (get_r_univ() * get_theta_earth())
}

/*
Calculate the amount of air occupying the habitat volume at Earth
reference conditions.

	Args:
		v_hab: habitat air volume, m3

	Returns:
		amount of air, mol
*/
func get_n_air(v_hab float64) float64 {
	return v_hab * get_rho_mol_a()
}

/*
Calculate the mass of air from the amount of air.

	Args:
		n_air: amount of air, mol

	Returns:
		mass of air, kg
*/
func get_m_air(n_air float64) float64 {
	return n_air * get_m_mol_a() / 1000.0
}

/*
Calculate the isothermal work of compressing the habitat air from the
Mars reference pressure to the Earth reference pressure,
W = n R T ln(p2/p1).

	Args:
		n_air: amount of air, mol

	Returns:
		pressurization work, kJ
*/
func get_w_prs(n_air float64) float64 {
	return n_air * get_r_univ() * get_theta_earth() * math.Log(get_p_earth()/get_p_mars()) * 0.001
}

/*
Calculate the sensible heat to raise the habitat air from the Mars
reference temperature to the Earth reference temperature, Q = m c dT.

	Args:
		m_air: mass of air, kg

	Returns:
		sensible heat, kJ
*/
func get_q_heat(m_air float64) float64 {
	return m_air * get_c_a() * (get_theta_earth() - get_theta_mars()) * 0.001
}
