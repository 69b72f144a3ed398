package energy

// universal gas constant, J/(mol K)
func get_r_univ() float64 {
	return 8.314
}

// specific heat capacity of air, J/(kg K)
func get_c_a() float64 {
	return 1005.0
}

// molar mass of air, g/mol
func get_m_mol_a() float64 {
	return 28.96
}

// Earth reference temperature, K
func get_theta_earth() float64 {
	return 296.0
}

// Mars reference temperature, K
func get_theta_mars() float64 {
	return 213.0
}

// Earth reference pressure, atm
func get_p_earth() float64 {
	return 0.9997533
}

// Mars reference pressure, atm
func get_p_mars() float64 {
	return 0.00592154
}

// standard atmosphere, Pa
func get_p_atm() float64 {
	return 101325.0
}

// effective habitat height, m
// Converts the pressurized floor area into an air volume.
func get_h_hab() float64 {
	return 3.0
}

// length of a sol, s
func get_t_sol() float64 {
	return 88775.0
}

// sols in a Martian year
func get_n_sol() int {
	return 668
}

// SolsPerYear is the number of sols in a Martian year.
func SolsPerYear() int {
	return get_n_sol()
}

// solar irradiance at the Martian surface, W/m2
func get_i_sol_mars() float64 {
	return 586.0
}

// molar mass of water, g/mol
func get_m_mol_wtr() float64 {
	return 18.01528
}

// molar mass of methane, g/mol
func get_m_mol_ch4() float64 {
	return 16.04
}

// higher heating value of methane, kWh/kg
func get_e_hhv_ch4() float64 {
	return 15.4
}
