package thermal

import "errors"

var (
	// ErrInvalidMaterial is returned for a layer with a non-positive conductivity or thickness.
	ErrInvalidMaterial = errors.New("invalid material layer")

	// ErrEmptyAssembly is returned when a U-value is requested for zero layers.
	ErrEmptyAssembly = errors.New("empty assembly")

	ErrInvalidElementType     = errors.New("invalid element type")
	ErrInvalidDirection       = errors.New("invalid direction")
	ErrInvalidVentilationType = errors.New("invalid ventilation type")
	ErrInvalidVentilation     = errors.New("invalid ventilation system")
	ErrInvalidThermalBridge   = errors.New("invalid thermal bridge")
)
