package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_recorder(t *testing.T) {
	recorder := NewRecorder()

	recorder.recording("m_atm", "total mass of the atmosphere", 5.27e18, "kg")

	assert.Equal(t, 1, recorder.number_of_rows())
	assert.Equal(t, 5.27e18, recorder.get_value("m_atm"))
}

func Test_recorder_unknown_symbol(t *testing.T) {
	recorder := NewRecorder()

	assert.Panics(t, func() {
		recorder.get_value("q_in")
	})
}

func Test_save_balance(t *testing.T) {
	recorder := NewRecorder()
	run_balance(default_scenario(), recorder)

	output_data_dir := t.TempDir()
	recorder.save_balance(output_data_dir)

	bytes, err := os.ReadFile(filepath.Join(output_data_dir, "mass_balance.csv"))
	assert.NoError(t, err)
	assert.Contains(t, string(bytes), "symbol,description,value,unit")
	assert.Contains(t, string(bytes), "f_ret")
}
