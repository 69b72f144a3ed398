package energy

// Electrolysis and Sabatier methanation chain:
//
//	2 H2O -> 2 H2 + O2
//	CO2 + 4 H2 -> CH4 + 2 H2O
type SabatierRun struct {
	n_ch4 float64 // methane yield, mol
	m_ch4 float64 // methane yield, kg
	e_hyd float64 // electrolysis energy, kJ
	e_ch4 float64 // recoverable methane energy, kJ
}

/*
Run the water-to-methane chain for a batch of water.

	Args:
		m_wtr: electrolyzed water, kg
		e_hyd_spec: specific electrolysis energy, kWh/kg
		r_co2: carbon dioxide gathering rate, kg/h
		eta: methane recovery efficiency, -

	Returns:
		SabatierRun
*/
func NewSabatierRun(m_wtr, e_hyd_spec, r_co2, eta float64) *SabatierRun {
	n_h2 := get_n_wtr(m_wtr)
	n_co2 := get_n_co2(r_co2)
	n_ch4 := get_n_ch4(n_h2, n_co2)
	m_ch4 := get_m_ch4(n_ch4)

	return &SabatierRun{
		n_ch4: n_ch4,
		m_ch4: m_ch4,
		e_hyd: get_e_hyd(m_wtr, e_hyd_spec),
		e_ch4: get_e_ch4(m_ch4, eta),
	}
}

// methane yield, mol
func (s *SabatierRun) MethaneMoles() float64 {
	return s.n_ch4
}

// methane yield, kg
func (s *SabatierRun) MethaneMass() float64 {
	return s.m_ch4
}

// electrolysis energy, kJ
func (s *SabatierRun) ElectrolysisEnergy() float64 {
	return s.e_hyd
}

// recoverable methane energy, kJ
func (s *SabatierRun) MethaneEnergy() float64 {
	return s.e_ch4
}

/*
Calculate the amount of water (and, 1:1, of dihydrogen after
electrolysis) in a water mass.

	Args:
		m_wtr: water, kg

	Returns:
		amount of water, mol
*/
func get_n_wtr(m_wtr float64) float64 {
	return m_wtr * 1000.0 / get_m_mol_wtr()
}

/*
Calculate the amount of carbon dioxide gathered in one hour.

	Args:
		r_co2: gathering rate, kg/h

	Returns:
		amount of carbon dioxide, mol
*/
func get_n_co2(r_co2 float64) float64 {
	// molar mass of carbon dioxide, g/mol
	const m_mol_co2 = 44.01

	return r_co2 * 1000.0 / m_mol_co2
}

/*
Calculate the methane yield. The reaction consumes 4 mol of dihydrogen
per mol of methane and is limited by whichever of dihydrogen and carbon
dioxide runs out first.

	Args:
		n_h2: amount of dihydrogen, mol
		n_co2: amount of carbon dioxide, mol

	Returns:
		methane yield, mol
*/
func get_n_ch4(n_h2, n_co2 float64) float64 {
	n_ch4 := n_h2 / 4.0
	if n_co2 < n_ch4 {
		n_ch4 = n_co2
	}
	return n_ch4
}

/*
Calculate the mass of a methane yield.

	Args:
		n_ch4: methane, mol

	Returns:
		methane, kg
*/
func get_m_ch4(n_ch4 float64) float64 {
	return n_ch4 * get_m_mol_ch4() / 1000.0
}

/*
Calculate the electrolysis energy for a batch of water.

	Args:
		m_wtr: water, kg
		e_hyd_spec: specific electrolysis energy, kWh/kg

	Returns:
		electrolysis energy, kJ
*/
func get_e_hyd(m_wtr, e_hyd_spec float64) float64 {
	return m_wtr * 3600.0 * e_hyd_spec
}

/*
Calculate the energy recoverable from burning a methane yield.

	Args:
		m_ch4: methane, kg
		eta: recovery efficiency, -

	Returns:
		recoverable energy, kJ
*/
func get_e_ch4(m_ch4, eta float64) float64 {
	return m_ch4 * get_e_hhv_ch4() * 3600.0 * eta
}
