package project

import (
	"errors"
	"fmt"

	"building_energy_calc/catalog"
	"building_energy_calc/solar"
	"building_energy_calc/thermal"
)

type ElementSummary struct {
	Name   string  `json:"name" csv:"name"`
	Type   string  `json:"type" csv:"type"`
	Area   float64 `json:"area" csv:"area"`       // m2
	UValue float64 `json:"u_value" csv:"u_value"` // W/m2K
}

type EnvelopeSummary struct {
	Area                           float64          `json:"area"`                               // m2
	HeatLossCoefficient            float64          `json:"heat_loss_coefficient"`              // W/K
	HeatLossCoefficientWithBridges float64          `json:"heat_loss_coefficient_with_bridges"` // W/K
	MeanUValue                     float64          `json:"mean_u_value"`                       // W/m2K
	Elements                       []ElementSummary `json:"elements"`
}

type SolarSummary struct {
	Panel       string             `json:"panel"`
	Orientation solar.Orientation  `json:"orientation"`
	Tilt        float64            `json:"tilt"`
	Result      solar.SizingResult `json:"result"`
}

type Report struct {
	Name             string                `json:"name"`
	ClimateZone      string                `json:"climate_zone,omitempty"`
	AirFlow          float64               `json:"air_flow"`           // m3/h
	EffectiveAirFlow float64               `json:"effective_air_flow"` // after heat recovery, m3/h
	Envelope         EnvelopeSummary       `json:"envelope"`
	Heating          thermal.HeatingResult `json:"heating"`
	Cooling          thermal.CoolingResult `json:"cooling"`
	Solar            *SolarSummary         `json:"solar,omitempty"`
}

/*
EvaluateLoads computes the envelope summary and the design loads of a project.
The solar section, if any, is not looked at.

	Args:
		p: project
		cat: catalog used to resolve material names

	Returns:
		report without the solar summary

	Notes:
		The aggregators receive the nominal air flow of the ventilation system.
		The flow left after heat recovery is reported as EffectiveAirFlow only.
*/
func EvaluateLoads(p *Project, cat *catalog.Catalog) (*Report, error) {
	elements, err := p.Elements(cat)
	if err != nil {
		return nil, err
	}

	vent, err := p.VentilationSystem()
	if err != nil {
		return nil, err
	}

	env, err := thermal.NewEnvelope(elements)
	if err != nil {
		return nil, err
	}

	dc := p.DesignConditions()
	n_p := p.Occupants()
	a_floor := p.Dimensions.FloorArea

	heating, err := dc.HeatingLoad(elements, vent.AirFlow, n_p, a_floor, p.Climate.ExteriorTemperature)
	if err != nil {
		return nil, fmt.Errorf("heating load: %w", err)
	}
	cooling, err := dc.CoolingLoad(elements, vent.AirFlow, n_p, a_floor, p.CoolingExteriorTemperature(), p.Climate.SolarGains)
	if err != nil {
		return nil, fmt.Errorf("cooling load: %w", err)
	}

	r := &Report{
		Name:             p.Name,
		AirFlow:          vent.AirFlow,
		EffectiveAirFlow: vent.EffectiveAirFlow(),
		Envelope: EnvelopeSummary{
			Area:                           env.Area(),
			HeatLossCoefficient:            env.HeatLossCoefficient(),
			HeatLossCoefficientWithBridges: env.HeatLossCoefficientWithBridges(),
			MeanUValue:                     env.MeanUValue(),
		},
		Heating: heating,
		Cooling: cooling,
	}
	if p.Location.ClimateZone != "" {
		r.ClimateZone = ClimateZone(p.Location.ClimateZone).Description()
	}

	u_js := env.UValues()
	for j, e := range env.Elements() {
		r.Envelope.Elements = append(r.Envelope.Elements, ElementSummary{
			Name:   e.Name,
			Type:   e.Type.String(),
			Area:   e.Area,
			UValue: u_js[j],
		})
	}

	return r, nil
}

/*
Evaluate runs every calculation a project describes.

	Args:
		p: project
		cat: catalog used to resolve material and panel names

	Returns:
		report of the envelope, the design loads and, when the project has a
		solar section, the array sizing

	Notes:
		On solar.ErrInfeasiblePayback the report is returned together with the
		error, its solar summary holding the array size.
*/
func Evaluate(p *Project, cat *catalog.Catalog) (*Report, error) {
	r, err := EvaluateLoads(p, cat)
	if err != nil {
		return nil, err
	}
	if p.Solar == nil {
		return r, nil
	}

	s, err := p.evaluateSolar(cat)
	if s == nil {
		return nil, fmt.Errorf("solar sizing: %w", err)
	}
	r.Solar = s
	if err != nil {
		return r, fmt.Errorf("solar sizing: %w", err)
	}
	return r, nil
}

func (p *Project) evaluateSolar(cat *catalog.Catalog) (*SolarSummary, error) {
	sc, err := p.SiteConditions()
	if err != nil {
		return nil, err
	}
	panel, err := p.Solar.PanelSpec(cat)
	if err != nil {
		return nil, err
	}
	o, err := p.Solar.orientation()
	if err != nil {
		return nil, err
	}
	tilt := p.Solar.tilt()

	res, err := sc.SizeArray(p.Solar.AnnualConsumption, o, tilt, p.Solar.ShadingLoss, panel, p.Solar.electricityRate())
	if err != nil && !errors.Is(err, solar.ErrInfeasiblePayback) {
		return nil, err
	}

	// an infeasible payback still carries the array size
	return &SolarSummary{
		Panel:       panel.String(),
		Orientation: o,
		Tilt:        tilt,
		Result:      res,
	}, err
}
