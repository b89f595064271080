package main

import "math"

/*
Calculate the CO2 mass accumulation rate in the atmosphere.

    Args:
        m_atm: total mass of the atmosphere, kg
        dw: mass fraction growth rate of CO2, kg/kg/yr

    Returns:
        CO2 mass accumulation rate, kg/yr
*/
func get_q_acc(m_atm float64, dw float64) float64 {
	return m_atm * dw
}

/*
Solve the material balance around the atmosphere for the CO2 outflow.

    Args:
        q_in: CO2 inflow, kg/yr
        q_acc: CO2 mass accumulation rate, kg/yr

    Returns:
        CO2 outflow, kg/yr

    Notes:
        accumulation = inflow - outflow + generation - consumption
        There is no generation or consumption term inside the system
        boundary, so the balance reduces to
        outflow = inflow - accumulation.
*/
func get_q_out(q_in float64, q_acc float64) float64 {
	return q_in - q_acc
}

/*
Calculate the fraction of the CO2 inflow retained in the atmosphere.

    Args:
        q_in: CO2 inflow, kg/yr
        q_acc: CO2 mass accumulation rate, kg/yr

    Returns:
        retained fraction, -

    Notes:
        The value lies in (0, 1) for physically plausible inputs.
        The ratio is undefined for a non-positive inflow; NaN is
        returned in that case.
*/
func get_f_ret(q_in float64, q_acc float64) float64 {
	if q_in <= 0.0 {
		return math.NaN()
	}
	return q_acc / q_in
}
