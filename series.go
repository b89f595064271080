package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"
)

// one year of observed data
type AnnualRow struct {
	Year       int     `csv:"year"`        // calendar year
	EmissionGt float64 `csv:"emission_gt"` // global CO2 inflow, Gt/yr
	GrowthPpm  float64 `csv:"growth_ppm"`  // CO2 mole fraction growth rate, ppm/yr
}

// results of the balance calculation for every year of the series
type SeriesResult struct {
	years    []int         // calendar years, [n]
	q_in_ns  *mat.VecDense // CO2 inflow, kg/yr, [n]
	q_acc_ns *mat.VecDense // CO2 mass accumulation rate, kg/yr, [n]
	q_out_ns *mat.VecDense // CO2 outflow, kg/yr, [n]
	f_ret_ns *mat.VecDense // fraction of the inflow retained in the atmosphere, -, [n]
}

// number of years in the series
func (self *SeriesResult) number_of_years() int {
	return len(self.years)
}

/*
Read the annual observed data.

    Args:
        file_path: path of the annual series CSV file

    Returns:
        list of AnnualRow structs
*/
func load_annual_rows(file_path string) []*AnnualRow {

	// file is exist
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	// Open the CSV file
	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*AnnualRow

	// Unmarshal the CSV data into the slice of AnnualRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	if len(rows) == 0 {
		panic("Error Row length of the file should be 1 or more.")
	}

	return rows
}

/*
Run the balance calculation for every year of the series.

    Args:
        rows: annual observed data
        scd: calculation conditions (the physical constants are taken
            from here; emission_gt and growth_ppm are taken from the
            rows)

    Returns:
        SeriesResult struct

    Notes:
        The retained fraction is undefined for a year with
        non-positive emissions. NaN is recorded for such a year and the
        other years are unaffected.
*/
func run_series(rows []*AnnualRow, scd *Scenario) *SeriesResult {
	n := len(rows)

	// total mass of the atmosphere, kg
	m_atm := get_m_atm(scd.EarthRadius, scd.Gravity, scd.SurfacePressure)

	years := make([]int, n)
	q_in := make([]float64, n)
	dw := make([]float64, n)
	for i, row := range rows {
		years[i] = row.Year

		// CO2 inflow, kg/yr
		q_in[i] = t_to_kg(row.EmissionGt * 1.0e9)

		// CO2 mass fraction growth rate, kg/kg/yr
		dw[i] = mole_to_mass_fraction(ppm_to_mole_fraction(row.GrowthPpm), get_m_co2(), get_m_air())
	}

	q_in_ns := mat.NewVecDense(n, q_in)
	dw_ns := mat.NewVecDense(n, dw)

	// CO2 mass accumulation rate, kg/yr, [n]
	q_acc_ns := mat.NewVecDense(n, nil)
	q_acc_ns.ScaleVec(m_atm, dw_ns)

	// CO2 outflow, kg/yr, [n]
	q_out_ns := mat.NewVecDense(n, nil)
	q_out_ns.SubVec(q_in_ns, q_acc_ns)

	// fraction of the inflow retained in the atmosphere, -, [n]
	f_ret_ns := mat.NewVecDense(n, nil)
	f_ret_ns.DivElemVec(q_acc_ns, q_in_ns)
	for i := 0; i < n; i++ {
		if q_in_ns.AtVec(i) <= 0.0 {
			f_ret_ns.SetVec(i, math.NaN())
		}
	}

	return &SeriesResult{
		years:    years,
		q_in_ns:  q_in_ns,
		q_acc_ns: q_acc_ns,
		q_out_ns: q_out_ns,
		f_ret_ns: f_ret_ns,
	}
}

// print the retained fraction of every year
func (self *SeriesResult) print_report() {
	fmt.Printf("%6s %14s %14s %14s %8s\n", "year", "q_in [kg/yr]", "q_acc [kg/yr]", "q_out [kg/yr]", "f_ret")
	for i, year := range self.years {
		fmt.Printf("%6d %14.5e %14.5e %14.5e %8.4f\n",
			year,
			self.q_in_ns.AtVec(i),
			self.q_acc_ns.AtVec(i),
			self.q_out_ns.AtVec(i),
			self.f_ret_ns.AtVec(i),
		)
	}
}

/*
Save the results of the series calculation as a CSV file.

    Args:
        output_data_dir: path of the output directory
*/
func (self *SeriesResult) save_series(output_data_dir string) {
	series_path := filepath.Join(output_data_dir, "mass_balance_series.csv")
	log.Printf("Save series data to `%s`", series_path)

	file, err := os.Create(series_path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"year", "q_in", "q_acc", "q_out", "f_ret"})
	for i, year := range self.years {
		writer.Write([]string{
			strconv.Itoa(year),
			strconv.FormatFloat(self.q_in_ns.AtVec(i), 'e', -1, 64),
			strconv.FormatFloat(self.q_acc_ns.AtVec(i), 'e', -1, 64),
			strconv.FormatFloat(self.q_out_ns.AtVec(i), 'e', -1, 64),
			strconv.FormatFloat(self.f_ret_ns.AtVec(i), 'f', -1, 64),
		})
	}
}
