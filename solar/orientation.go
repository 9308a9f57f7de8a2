package solar

import (
	"fmt"
	"sort"
)

// Orientation of the array.
type Orientation string

const (
	OrientationSouth     Orientation = "south"
	OrientationSouthEast Orientation = "south-east"
	OrientationSouthWest Orientation = "south-west"
	OrientationEast      Orientation = "east"
	OrientationWest      Orientation = "west"
	OrientationNorth     Orientation = "north"
)

// OrientationFromString accepts the long names and the compass short codes.
func OrientationFromString(str string) (Orientation, error) {
	switch str {
	case "south", "s":
		return OrientationSouth, nil
	case "south-east", "se":
		return OrientationSouthEast, nil
	case "south-west", "sw":
		return OrientationSouthWest, nil
	case "east", "e":
		return OrientationEast, nil
	case "west", "w":
		return OrientationWest, nil
	case "north", "n":
		return OrientationNorth, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrientation, str)
	}
}

// OrientationFactors maps an orientation to its yield factor relative to south.
type OrientationFactors map[Orientation]float64

func DefaultOrientationFactors() OrientationFactors {
	return OrientationFactors{
		OrientationSouth:     1.0,
		OrientationSouthEast: 0.95,
		OrientationSouthWest: 0.95,
		OrientationEast:      0.85,
		OrientationWest:      0.85,
		OrientationNorth:     0.65,
	}
}

func (f OrientationFactors) Factor(o Orientation) (float64, error) {
	v, ok := f[o]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, o)
	}
	return v, nil
}

// With returns a copy of f with the given entries replaced.
func (f OrientationFactors) With(overrides OrientationFactors) OrientationFactors {
	out := make(OrientationFactors, len(f)+len(overrides))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Orientations lists the keys of f in a stable order.
func (f OrientationFactors) Orientations() []Orientation {
	os := make([]Orientation, 0, len(f))
	for o := range f {
		os = append(os, o)
	}
	sort.Slice(os, func(i, j int) bool { return os[i] < os[j] })
	return os
}
