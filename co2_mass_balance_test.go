package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_run(t *testing.T) {
	series_path := filepath.Join(t.TempDir(), "annual.csv")
	data := "year,emission_gt,growth_ppm\n" +
		"2021,36.3,2.4\n"
	err := os.WriteFile(series_path, []byte(data), 0644)
	assert.NoError(t, err)

	output_data_dir := filepath.Join(t.TempDir(), "out")

	run(Config{
		SeriesPath:    series_path,
		OutputDataDir: output_data_dir,
		IsCsvSaved:    true,
	})

	// both result tables are written to the output directory
	_, err = os.Stat(filepath.Join(output_data_dir, "mass_balance.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(output_data_dir, "mass_balance_series.csv"))
	assert.NoError(t, err)
}
