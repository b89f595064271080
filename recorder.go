package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// one recorded quantity of the calculation
type StepRecord struct {
	symbol      string  // symbol of the quantity
	description string  // description of the quantity
	value       float64 // value of the quantity
	unit        string  // unit of the quantity
}

// Recorder stores the intermediate and final quantities of the balance
// calculation in the order they were computed.
type Recorder struct {
	rows []StepRecord
}

func NewRecorder() *Recorder {
	var r Recorder

	r.rows = make([]StepRecord, 0, 8)

	return &r
}

// record one quantity
func (self *Recorder) recording(symbol string, description string, value float64, unit string) {
	self.rows = append(self.rows, StepRecord{
		symbol:      symbol,
		description: description,
		value:       value,
		unit:        unit,
	})
}

// number of recorded quantities
func (self *Recorder) number_of_rows() int {
	return len(self.rows)
}

// the recorded value for a symbol; panics if the symbol was never recorded
func (self *Recorder) get_value(symbol string) float64 {
	for _, row := range self.rows {
		if row.symbol == symbol {
			return row.value
		}
	}
	panic(fmt.Sprintf("symbol `%s` is not recorded", symbol))
}

// print the recorded quantities as a formatted table
func (self *Recorder) print_report() {
	fmt.Printf("%-8s %-52s %14s %s\n", "symbol", "description", "value", "unit")
	for _, row := range self.rows {
		fmt.Printf("%-8s %-52s %14.5e %s\n", row.symbol, row.description, row.value, row.unit)
	}
}

/*
Save the recorded quantities as a CSV file.

    Args:
        output_data_dir: path of the output directory
*/
func (self *Recorder) save_balance(output_data_dir string) {
	balance_path := filepath.Join(output_data_dir, "mass_balance.csv")
	log.Printf("Save balance data to `%s`", balance_path)

	file, err := os.Create(balance_path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"symbol", "description", "value", "unit"})
	for _, row := range self.rows {
		writer.Write([]string{
			row.symbol,
			row.description,
			strconv.FormatFloat(row.value, 'e', -1, 64),
			row.unit,
		})
	}
}
