package main

import "log"

// results of the balance calculation
type BalanceResult struct {
	q_in  float64 // CO2 inflow, kg/yr
	dx    float64 // CO2 mole fraction growth rate, mol/mol/yr
	dw    float64 // CO2 mass fraction growth rate, kg/kg/yr
	a_srf float64 // surface area of the Earth, m2
	m_atm float64 // total mass of the atmosphere, kg
	q_acc float64 // CO2 mass accumulation rate, kg/yr
	q_out float64 // CO2 outflow, kg/yr
	f_ret float64 // fraction of the inflow retained in the atmosphere, -
}

/*
Run the balance calculation.

The quantities are computed in a fixed order and each one is stored in
the recorder as soon as it is known.

    Args:
        scd: calculation conditions
        recorder: step recorder

    Returns:
        BalanceResult struct
*/
func run_balance(scd *Scenario, recorder *Recorder) *BalanceResult {

	// CO2 inflow, kg/yr
	// Gt/yr -> t/yr -> kg/yr
	log.Printf("convert the emission rate to kg/yr")
	q_in := t_to_kg(scd.EmissionGt * 1.0e9)
	recorder.recording("q_in", "global CO2 inflow", q_in, "kg/yr")

	// CO2 mole fraction growth rate, mol/mol/yr
	log.Printf("convert the concentration growth rate to a mole fraction")
	dx := ppm_to_mole_fraction(scd.GrowthPpm)
	recorder.recording("dx", "CO2 mole fraction growth rate", dx, "mol/mol/yr")

	// CO2 mass fraction growth rate, kg/kg/yr
	log.Printf("convert the mole fraction growth rate to a mass fraction growth rate")
	dw := mole_to_mass_fraction(dx, get_m_co2(), get_m_air())
	recorder.recording("dw", "CO2 mass fraction growth rate", dw, "kg/kg/yr")

	// surface area of the Earth, m2
	log.Printf("estimate the mass of the atmosphere")
	a_srf := get_a_srf(scd.EarthRadius)
	recorder.recording("a_srf", "surface area of the Earth", a_srf, "m2")

	// total mass of the atmosphere, kg
	m_atm := get_m_atm(scd.EarthRadius, scd.Gravity, scd.SurfacePressure)
	recorder.recording("m_atm", "total mass of the atmosphere", m_atm, "kg")

	// CO2 mass accumulation rate, kg/yr
	log.Printf("calculate the accumulation rate")
	q_acc := get_q_acc(m_atm, dw)
	recorder.recording("q_acc", "CO2 mass accumulation rate", q_acc, "kg/yr")

	// CO2 outflow, kg/yr
	log.Printf("solve the material balance for the outflow")
	q_out := get_q_out(q_in, q_acc)
	recorder.recording("q_out", "CO2 outflow", q_out, "kg/yr")

	// fraction of the inflow retained in the atmosphere, -
	f_ret := get_f_ret(q_in, q_acc)
	recorder.recording("f_ret", "fraction of the inflow retained in the atmosphere", f_ret, "-")

	return &BalanceResult{
		q_in:  q_in,
		dx:    dx,
		dw:    dw,
		a_srf: a_srf,
		m_atm: m_atm,
		q_acc: q_acc,
		q_out: q_out,
		f_ret: f_ret,
	}
}
