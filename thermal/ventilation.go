package thermal

import "fmt"

type VentilationType string

const (
	VentilationTypeSingleFlow VentilationType = "single-flow"
	VentilationTypeDoubleFlow VentilationType = "double-flow"
	VentilationTypeNatural    VentilationType = "natural"
	VentilationTypeMechanical VentilationType = "mechanical"
)

func VentilationTypeFromString(str string) (VentilationType, error) {
	switch VentilationType(str) {
	case VentilationTypeSingleFlow, VentilationTypeDoubleFlow, VentilationTypeNatural, VentilationTypeMechanical:
		return VentilationType(str), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVentilationType, str)
	}
}

// Ventilation system of the building.
type VentilationSystem struct {
	Type                   VentilationType
	AirFlow                float64 // air flow, m3/h
	HeatRecoveryEfficiency float64 // heat recovery efficiency of a double-flow unit, %
}

func (v VentilationSystem) Validate() error {
	if _, err := VentilationTypeFromString(string(v.Type)); err != nil {
		return err
	}
	if v.AirFlow < 0 {
		return fmt.Errorf("%w: negative air flow %v m3/h", ErrInvalidVentilation, v.AirFlow)
	}
	if v.HeatRecoveryEfficiency < 0 || v.HeatRecoveryEfficiency > 100 {
		return fmt.Errorf("%w: heat recovery efficiency %v %% outside [0, 100]", ErrInvalidVentilation, v.HeatRecoveryEfficiency)
	}
	return nil
}

/*
Air flow seen by the load aggregators.

	Returns:
		air flow, m3/h

	Note:
		Only a double-flow unit recovers heat; the recovered share of the
		exhaust air no longer counts as a loss.
*/
func (v VentilationSystem) EffectiveAirFlow() float64 {
	if v.Type == VentilationTypeDoubleFlow {
		return v.AirFlow * (1.0 - v.HeatRecoveryEfficiency/100.0)
	}
	return v.AirFlow
}
