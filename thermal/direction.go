package thermal

import "fmt"

// 方位
type Direction string

const (
	DirectionS      Direction = "s"
	DirectionSW     Direction = "sw"
	DirectionW      Direction = "w"
	DirectionNW     Direction = "nw"
	DirectionN      Direction = "n"
	DirectionNE     Direction = "ne"
	DirectionE      Direction = "e"
	DirectionSE     Direction = "se"
	DirectionTop    Direction = "top"
	DirectionBottom Direction = "bottom"
)

// DirectionFromString accepts the short codes and the long English names.
func DirectionFromString(str string) (Direction, error) {
	switch str {
	case "s", "south":
		return DirectionS, nil
	case "sw", "south-west":
		return DirectionSW, nil
	case "w", "west":
		return DirectionW, nil
	case "nw", "north-west":
		return DirectionNW, nil
	case "n", "north":
		return DirectionN, nil
	case "ne", "north-east":
		return DirectionNE, nil
	case "e", "east":
		return DirectionE, nil
	case "se", "south-east":
		return DirectionSE, nil
	case "top":
		return DirectionTop, nil
	case "bottom":
		return DirectionBottom, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, str)
	}
}

// 鉛直面か否か
func (d Direction) IsVertical() bool {
	return d != DirectionTop && d != DirectionBottom
}
