package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_t_to_kg(t *testing.T) {
	// 34.5 Gt/yr = 34.5e9 t/yr = 34.5e12 kg/yr
	assert.Equal(t, 3.45e13, t_to_kg(34.5e9))
}

func Test_ppm_to_mole_fraction(t *testing.T) {
	assert.Equal(t, 2.4e-6, ppm_to_mole_fraction(2.4))
}

func Test_mole_to_mass_fraction(t *testing.T) {
	// 2.4e-6 mol/mol/yr scaled by the molar mass ratio 44.01/28.97
	dw := mole_to_mass_fraction(2.4e-6, get_m_co2(), get_m_air())

	assert.InDelta(t, 3.65e-6, dw, 0.005e-6)
}
