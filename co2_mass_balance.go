package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

type Config struct {
	ScenarioPath  string // path of the scenario JSON file ("" uses the built-in textbook scenario)
	SeriesPath    string // path of the annual series CSV file ("" skips the series calculation)
	OutputDataDir string // path of the output directory
	IsCsvSaved    bool   // whether the results are saved as CSV files
}

/*
Run the mass balance calculation.

    Args:
        c: run conditions
*/
func run(c Config) {
	scenario_path := c.ScenarioPath
	series_path := c.SeriesPath
	output_data_dir := c.OutputDataDir
	is_csv_saved := c.IsCsvSaved

	// ---- preparation ----

	// make the output directory
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// load the calculation conditions
	var scd *Scenario
	if scenario_path == "" {
		log.Printf("use the built-in scenario")
		scd = default_scenario()
	} else {
		log.Printf("Load scenario data from `%s`", scenario_path)
		scd = load_scenario(scenario_path)
	}

	// ---- calculation ----

	recorder := NewRecorder()
	run_balance(scd, recorder)

	recorder.print_report()

	if is_csv_saved {
		recorder.save_balance(output_data_dir)
	}

	// ---- series calculation ----

	if series_path != "" {
		log.Printf("Load annual series data from `%s`", series_path)
		rows := load_annual_rows(series_path)

		sr := run_series(rows, scd)

		sr.print_report()

		if is_csv_saved {
			sr.save_series(output_data_dir)
		}
	}
}

func main() {
	var scenario_path string
	flag.StringVar(&scenario_path, "input", "", "path of the scenario JSON file")

	var series_path string
	flag.StringVar(&series_path, "series", "", "path of the annual series CSV file")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "path of the output directory")

	var csv_saved bool
	flag.BoolVar(&csv_saved, "csv_saved", false, "whether the results are saved as CSV files")

	flag.Parse()

	// Print flag values
	fmt.Printf("scenario_path: %s\n", scenario_path)
	fmt.Printf("series_path: %s\n", series_path)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("csv_saved: %t\n", csv_saved)

	start := time.Now()

	run(Config{
		ScenarioPath:  scenario_path,
		SeriesPath:    series_path,
		OutputDataDir: output_data_dir,
		IsCsvSaved:    csv_saved,
	})

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
