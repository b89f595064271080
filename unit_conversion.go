package main

/*
Convert a mass flow given in metric tons per year to kg per year.

    Args:
        q_t: mass flow, t/yr

    Returns:
        mass flow, kg/yr
*/
func t_to_kg(q_t float64) float64 {
	return q_t * 1000.0
}

/*
Convert a concentration growth rate given in ppm per year to a mole
fraction growth rate.

    Args:
        c_ppm: concentration growth rate, ppm/yr

    Returns:
        mole fraction growth rate, mol/mol/yr
*/
func ppm_to_mole_fraction(c_ppm float64) float64 {
	return c_ppm * 1.0e-6
}

/*
Convert a mole fraction growth rate of a component in a mixture to a
mass fraction growth rate.

    Args:
        dx: mole fraction growth rate of the component, mol/mol/yr
        m_cmp: molar mass of the component, g/mol
        m_mix: molar mass of the mixture, g/mol

    Returns:
        mass fraction growth rate, kg/kg/yr

    Notes:
        Both molar masses have to be given in the same unit.
*/
func mole_to_mass_fraction(dx float64, m_cmp float64, m_mix float64) float64 {
	return dx * m_cmp / m_mix
}
