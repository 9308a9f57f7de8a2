package solar

import (
	"fmt"
	"math"
)

// Site reference values used by the sizer.
type SiteConditions struct {
	BaseIrradiation    float64            // annual irradiation, kWh/m2/yr
	OptimumTilt        float64            // tilt of maximum yield, degree
	InstallMarkup      float64            // installed cost / module cost, -
	OrientationFactors OrientationFactors // yield factor per orientation, -
}

func DefaultSiteConditions() SiteConditions {
	return SiteConditions{
		BaseIrradiation:    1100,
		OptimumTilt:        33,
		InstallMarkup:      1.5,
		OrientationFactors: DefaultOrientationFactors(),
	}
}

const (
	DefaultTilt            = 30.0 // degree
	DefaultElectricityRate = 0.25 // per kWh
)

type SizingResult struct {
	RequiredPeakPower float64 `json:"required_peak_power" csv:"required_peak_power"` // Wc
	PanelCount        int     `json:"panel_count" csv:"panel_count"`
	RequiredArea      float64 `json:"required_area" csv:"required_area"`   // m2
	AnnualYield       float64 `json:"annual_yield" csv:"annual_yield"`     // kWh/yr
	PaybackPeriod     float64 `json:"payback_period" csv:"payback_period"` // years
	YieldPerWatt      float64 `json:"yield_per_watt" csv:"yield_per_watt"` // Wh/Wc/yr
	InstallCost       float64 `json:"install_cost" csv:"install_cost"`
	AnnualSavings     float64 `json:"annual_savings" csv:"annual_savings"`
}

/*
Size a photovoltaic array for an annual consumption.

	Args:
		consumption: annual consumption, kWh/yr
		orientation: orientation of the array
		tilt: tilt angle, degree
		shading: shading loss, %
		panel: module specification
		rate: electricity rate, per kWh

	Returns:
		sizing result

	Note:
		On ErrInfeasiblePayback the sizing fields are still filled in.
*/
func (sc SiteConditions) SizeArray(
	consumption float64,
	orientation Orientation,
	tilt float64,
	shading float64,
	panel PanelSpec,
	rate float64,
) (SizingResult, error) {
	f_ori, err := sc.OrientationFactors.Factor(orientation)
	if err != nil {
		return SizingResult{}, err
	}
	if err := panel.Validate(); err != nil {
		return SizingResult{}, err
	}

	f_tilt := TiltFactor(tilt, sc.OptimumTilt)

	yield_per_watt := sc.BaseIrradiation * f_ori * f_tilt * (1 - shading/100) * (panel.Efficiency / 100)
	if !(yield_per_watt > 0) || math.IsInf(yield_per_watt, 0) {
		return SizingResult{}, fmt.Errorf("%w: yield per watt %v", ErrInfeasibleSizing, yield_per_watt)
	}

	p_req := (consumption * 1000) / yield_per_watt
	if !(p_req >= 0) || math.IsInf(p_req, 0) {
		return SizingResult{}, fmt.Errorf("%w: required peak power %v Wc", ErrInfeasibleSizing, p_req)
	}

	n_ratio := math.Ceil(p_req / panel.RatedPower)
	if !(n_ratio < float64(math.MaxInt)) {
		return SizingResult{}, fmt.Errorf("%w: panel count %v out of range", ErrInfeasibleSizing, n_ratio)
	}
	n_panel := int(n_ratio)

	res := SizingResult{
		RequiredPeakPower: p_req,
		PanelCount:        n_panel,
		RequiredArea:      float64(n_panel) * panel.Area,
		AnnualYield:       float64(n_panel) * panel.RatedPower * yield_per_watt / 1000,
		YieldPerWatt:      yield_per_watt,
	}
	res.InstallCost = float64(n_panel) * panel.Price * sc.InstallMarkup
	res.AnnualSavings = res.AnnualYield * rate

	if !(res.AnnualSavings > 0) || math.IsInf(res.AnnualSavings, 0) {
		return res, fmt.Errorf("%w: annual savings %v", ErrInfeasiblePayback, res.AnnualSavings)
	}
	res.PaybackPeriod = res.InstallCost / res.AnnualSavings

	return res, nil
}

// SizeArray uses DefaultSiteConditions.
func SizeArray(consumption float64, orientation Orientation, tilt, shading float64, panel PanelSpec, rate float64) (SizingResult, error) {
	return DefaultSiteConditions().SizeArray(consumption, orientation, tilt, shading, panel, rate)
}
