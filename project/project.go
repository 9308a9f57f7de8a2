// Package project reads a building project file and turns it into inputs
// for the thermal and solar calculations.
package project

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidProject  = errors.New("invalid project")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownPanel    = errors.New("unknown panel")
)

type Project struct {
	Name        string       `yaml:"name"`
	Location    Location     `yaml:"location"`
	Dimensions  Dimensions   `yaml:"dimensions"`
	Envelope    Envelope     `yaml:"envelope"`
	Ventilation *Ventilation `yaml:"ventilation"`
	Occupancy   Occupancy    `yaml:"occupancy"`
	Climate     Climate      `yaml:"climate"`
	Solar       *Solar       `yaml:"solar"`
	Constants   Constants    `yaml:"constants"`
}

type Location struct {
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	Altitude    float64 `yaml:"altitude"`
	ClimateZone string  `yaml:"climate_zone"`
}

type Dimensions struct {
	FloorArea     float64 `yaml:"floor_area"`     // m2
	Volume        float64 `yaml:"volume"`         // m3
	CeilingHeight float64 `yaml:"ceiling_height"` // m
}

// Envelope groups the building elements the way a survey lists them.
type Envelope struct {
	Walls    []Element `yaml:"walls"`
	Floors   []Element `yaml:"floors"`
	Roof     []Element `yaml:"roof"`
	Openings []Element `yaml:"openings"`
}

type Element struct {
	Name           string          `yaml:"name"`
	Type           string          `yaml:"type"`
	Area           float64         `yaml:"area"`
	Orientation    string          `yaml:"orientation"`
	Tilt           *float64        `yaml:"tilt"`
	Layers         []Layer         `yaml:"layers"`
	SolarMask      *SolarMask      `yaml:"solar_mask"`
	ThermalBridges []ThermalBridge `yaml:"thermal_bridges"`
}

// Layer either names a catalog material or gives its properties.
// A positive thickness overrides the catalog thickness.
type Layer struct {
	Material            string  `yaml:"material"`
	Name                string  `yaml:"name"`
	ThermalConductivity float64 `yaml:"thermal_conductivity"`
	Thickness           float64 `yaml:"thickness"`
}

type SolarMask struct {
	Angle    float64 `yaml:"angle"`
	Distance float64 `yaml:"distance"`
}

type ThermalBridge struct {
	Type   string  `yaml:"type"`
	Value  float64 `yaml:"value"`
	Length float64 `yaml:"length"`
}

type Ventilation struct {
	Type                   string  `yaml:"type"`
	AirFlow                float64 `yaml:"air_flow"`                 // m3/h
	HeatRecoveryEfficiency float64 `yaml:"heat_recovery_efficiency"` // %
}

type Occupancy struct {
	Occupants *int `yaml:"occupants"`
}

// Climate carries the design exterior conditions. Humidity and wind are
// accepted but not used by the load formulas.
type Climate struct {
	ExteriorTemperature        float64  `yaml:"exterior_temperature"`         // degree C
	CoolingExteriorTemperature *float64 `yaml:"cooling_exterior_temperature"` // degree C
	SolarGains                 float64  `yaml:"solar_gains"`                  // W
	SolarRadiation             float64  `yaml:"solar_radiation"`              // W/m2
	Humidity                   float64  `yaml:"humidity"`                     // %
	WindSpeed                  float64  `yaml:"wind_speed"`                   // m/s
	WindDirection              float64  `yaml:"wind_direction"`               // degree
}

type Solar struct {
	AnnualConsumption float64    `yaml:"annual_consumption"` // kWh/yr
	Orientation       string     `yaml:"orientation"`
	Tilt              *float64   `yaml:"tilt"`             // degree
	ShadingLoss       float64    `yaml:"shading_loss"`     // %
	ElectricityRate   *float64   `yaml:"electricity_rate"` // per kWh
	Panel             PanelRef   `yaml:"panel"`
	CustomPanel       *PanelSpec `yaml:"custom_panel"`
}

type PanelRef struct {
	Brand string `yaml:"brand"`
	Model string `yaml:"model"`
}

type PanelSpec struct {
	Brand      string  `yaml:"brand"`
	Model      string  `yaml:"model"`
	Technology string  `yaml:"technology"`
	RatedPower float64 `yaml:"rated_power"`
	Efficiency float64 `yaml:"efficiency"`
	Area       float64 `yaml:"area"`
	Price      float64 `yaml:"price"`
}

// Constants overrides the design constants; nil keeps the default.
type Constants struct {
	WinterComfortTemperature *float64           `yaml:"winter_comfort_temperature"`
	SummerComfortTemperature *float64           `yaml:"summer_comfort_temperature"`
	GainPerOccupant          *float64           `yaml:"gain_per_occupant"`
	GainPerFloorArea         *float64           `yaml:"gain_per_floor_area"`
	AirDensity               *float64           `yaml:"air_density"`
	SpecificHeat             *float64           `yaml:"specific_heat"`
	BaseIrradiation          *float64           `yaml:"base_irradiation"`
	OptimumTilt              *float64           `yaml:"optimum_tilt"`
	InstallMarkup            *float64           `yaml:"install_markup"`
	OrientationFactors       map[string]float64 `yaml:"orientation_factors"`
}

// Load reads a project from a YAML or JSON file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the enumerated fields and the ranges the calculations rely on.
func (p *Project) Validate() error {
	if p.Location.ClimateZone != "" {
		if _, err := ClimateZoneFromString(p.Location.ClimateZone); err != nil {
			return err
		}
	}
	if p.Dimensions.FloorArea < 0 {
		return fmt.Errorf("%w: negative floor area %v", ErrInvalidProject, p.Dimensions.FloorArea)
	}
	if p.Occupancy.Occupants != nil && *p.Occupancy.Occupants < 0 {
		return fmt.Errorf("%w: negative occupants %d", ErrInvalidProject, *p.Occupancy.Occupants)
	}
	for _, group := range p.Envelope.groups() {
		for i, e := range group.elements {
			if e.Area < 0 {
				return fmt.Errorf("%w: %s[%d] %q: negative area %v", ErrInvalidProject, group.name, i, e.Name, e.Area)
			}
		}
	}
	if p.Solar != nil {
		if p.Solar.AnnualConsumption < 0 {
			return fmt.Errorf("%w: negative annual consumption %v", ErrInvalidProject, p.Solar.AnnualConsumption)
		}
		if p.Solar.ShadingLoss < 0 || p.Solar.ShadingLoss > 100 {
			return fmt.Errorf("%w: shading loss %v %% outside [0, 100]", ErrInvalidProject, p.Solar.ShadingLoss)
		}
	}
	return nil
}

type elementGroup struct {
	name        string
	defaultType string
	elements    []Element
}

func (e Envelope) groups() []elementGroup {
	return []elementGroup{
		{name: "walls", defaultType: "wall", elements: e.Walls},
		{name: "floors", defaultType: "floor", elements: e.Floors},
		{name: "roof", defaultType: "roof", elements: e.Roof},
		{name: "openings", defaultType: "window", elements: e.Openings},
	}
}
