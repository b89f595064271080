package main

import "math"

/*
Calculate the surface area of the Earth.

    Args:
        r_earth: mean radius of the Earth, m

    Returns:
        surface area, m2
*/
func get_a_srf(r_earth float64) float64 {
	return 4.0 * math.Pi * r_earth * r_earth
}

/*
Estimate the total mass of the atmosphere.

    Args:
        r_earth: mean radius of the Earth, m
        g: gravitational acceleration at the surface, m/s2
        p_srf: atmospheric pressure at sea level, Pa

    Returns:
        total mass of the atmosphere, kg

    Notes:
        The surface pressure is the weight of the air column above a
        unit area, so the column mass is p_srf / g, kg/m2. Multiplying
        by the surface area gives the mass of the whole atmosphere.
        The thickness of the atmosphere is negligible against the
        radius of the Earth.
*/
func get_m_atm(r_earth float64, g float64, p_srf float64) float64 {
	return get_a_srf(r_earth) * p_srf / g
}
