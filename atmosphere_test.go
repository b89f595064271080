package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_get_a_srf(t *testing.T) {
	a_srf := get_a_srf(get_r_earth())

	assert.InEpsilon(t, 5.1006e14, a_srf, 1.0e-3)
}

func Test_get_m_atm(t *testing.T) {
	m_atm := get_m_atm(get_r_earth(), get_g(), get_p_srf())

	assert.InDelta(t, 5.27e18, m_atm, 0.01e18)
}

func Test_get_m_atm_scales_with_pressure(t *testing.T) {
	// the column mass is proportional to the surface pressure
	m1 := get_m_atm(get_r_earth(), get_g(), get_p_srf())
	m2 := get_m_atm(get_r_earth(), get_g(), 2.0*get_p_srf())

	assert.InEpsilon(t, 2.0*m1, m2, 1.0e-12)
}
