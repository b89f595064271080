package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_get_q_out(t *testing.T) {
	q_in := 3.45e13
	q_acc := get_q_acc(
		get_m_atm(get_r_earth(), get_g(), get_p_srf()),
		mole_to_mass_fraction(2.4e-6, get_m_co2(), get_m_air()),
	)

	q_out := get_q_out(q_in, q_acc)

	// the balance has to close
	assert.Equal(t, q_in, q_out+q_acc)

	// accumulation is positive, so the outflow is strictly less than the inflow
	assert.Less(t, q_out, q_in)
}

func Test_get_f_ret(t *testing.T) {
	q_in := 3.45e13
	q_acc := get_q_acc(
		get_m_atm(get_r_earth(), get_g(), get_p_srf()),
		mole_to_mass_fraction(2.4e-6, get_m_co2(), get_m_air()),
	)

	f_ret := get_f_ret(q_in, q_acc)

	assert.InDelta(t, 0.56, f_ret, 0.01)
	assert.Greater(t, f_ret, 0.0)
	assert.Less(t, f_ret, 1.0)
}

func Test_get_f_ret_with_non_positive_inflow(t *testing.T) {
	// the ratio is undefined without an inflow
	assert.True(t, math.IsNaN(get_f_ret(0.0, 1.92e13)))
	assert.True(t, math.IsNaN(get_f_ret(-3.45e13, 1.92e13)))
}
