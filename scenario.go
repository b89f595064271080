package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"os"
)

/*
Calculation conditions of the balance.

emission_gt and growth_ppm are the two observed inputs. The physical
constants can be overridden for sensitivity studies; a zero value means
"use the default".
*/
type Scenario struct {
	EmissionGt      float64 `json:"emission_gt"`      // global CO2 inflow, Gt/yr
	GrowthPpm       float64 `json:"growth_ppm"`       // CO2 mole fraction growth rate, ppm/yr
	EarthRadius     float64 `json:"earth_radius"`     // mean radius of the Earth, m
	Gravity         float64 `json:"gravity"`          // gravitational acceleration, m/s2
	SurfacePressure float64 `json:"surface_pressure"` // atmospheric pressure at sea level, Pa
}

// the textbook example: 34.5 Gt/yr emitted, 2.4 ppm/yr observed growth
func default_scenario() *Scenario {
	s := &Scenario{
		EmissionGt: 34.5,
		GrowthPpm:  2.4,
	}
	s.fill_defaults()
	return s
}

// replace zero valued constants with the default physical constants
func (self *Scenario) fill_defaults() {
	if self.EarthRadius == 0.0 {
		self.EarthRadius = get_r_earth()
	}
	if self.Gravity == 0.0 {
		self.Gravity = get_g()
	}
	if self.SurfacePressure == 0.0 {
		self.SurfacePressure = get_p_srf()
	}
}

/*
Load the calculation conditions from a JSON file.

    Args:
        scenario_path: path or URL of the scenario JSON file

    Returns:
        Scenario struct
*/
func load_scenario(scenario_path string) *Scenario {
	var bytes []byte

	if len(scenario_path) >= 4 && scenario_path[0:4] == "http" {
		resp, err := http.Get(scenario_path)
		if err != nil {
			log.Fatal(err)
		}
		defer resp.Body.Close()
		bytes, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		file, err := os.Open(scenario_path)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		bytes, err = ioutil.ReadAll(file)
		if err != nil {
			log.Fatal(err)
		}
	}

	var s Scenario
	if err := json.Unmarshal(bytes, &s); err != nil {
		log.Fatal(err)
	}
	s.fill_defaults()

	return &s
}
