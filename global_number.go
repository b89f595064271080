package main

// molar mass of dry air, g/mol
func get_m_air() float64 {
	return 28.97
}

// molar mass of CO2, g/mol
func get_m_co2() float64 {
	return 44.01
}

// mean radius of the Earth, m
func get_r_earth() float64 {
	return 6371000.0
}

// gravitational acceleration at the Earth's surface, m/s2
func get_g() float64 {
	return 9.81
}

// atmospheric pressure at sea level, Pa
func get_p_srf() float64 {
	return 101325.0
}
