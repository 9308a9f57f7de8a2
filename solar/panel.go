package solar

import (
	"fmt"
	"math"
)

type Technology string

const (
	TechnologyMonocrystalline Technology = "monocrystalline"
	TechnologyPolycrystalline Technology = "polycrystalline"
	TechnologyBifacial        Technology = "bifacial"
)

func TechnologyFromString(str string) (Technology, error) {
	switch Technology(str) {
	case TechnologyMonocrystalline, TechnologyPolycrystalline, TechnologyBifacial:
		return Technology(str), nil
	default:
		return "", fmt.Errorf("%w: technology %q", ErrInvalidPanel, str)
	}
}

// PanelSpec describes one photovoltaic module.
type PanelSpec struct {
	Brand      string     `json:"brand"`
	Model      string     `json:"model"`
	Technology Technology `json:"technology"`
	RatedPower float64    `json:"rated_power"` // Wc
	Efficiency float64    `json:"efficiency"`  // %
	Area       float64    `json:"area"`        // m2
	Price      float64    `json:"price"`       // per module
}

func (p PanelSpec) String() string {
	if p.Brand == "" && p.Model == "" {
		return "custom"
	}
	return p.Brand + " " + p.Model
}

// Validate checks the ranges a custom panel must respect.
func (p PanelSpec) Validate() error {
	switch {
	case !(p.RatedPower > 0) || math.IsInf(p.RatedPower, 0):
		return fmt.Errorf("%w: %s: rated power %v Wc", ErrInvalidPanel, p, p.RatedPower)
	case !(p.Efficiency >= 0 && p.Efficiency <= 100):
		return fmt.Errorf("%w: %s: efficiency %v %%", ErrInvalidPanel, p, p.Efficiency)
	case !(p.Area > 0) || math.IsInf(p.Area, 0):
		return fmt.Errorf("%w: %s: area %v m2", ErrInvalidPanel, p, p.Area)
	case !(p.Price >= 0):
		return fmt.Errorf("%w: %s: price %v", ErrInvalidPanel, p, p.Price)
	}
	return nil
}
