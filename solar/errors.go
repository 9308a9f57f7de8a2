package solar

import "errors"

var (
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidPanel       = errors.New("invalid panel specification")

	// ErrInfeasibleSizing is returned when the yield per installed watt is not strictly positive.
	ErrInfeasibleSizing = errors.New("infeasible sizing")

	// ErrInfeasiblePayback is returned when the annual savings are not strictly positive.
	ErrInfeasiblePayback = errors.New("infeasible payback")
)
