package thermal

import "fmt"

// 熱橋の種類
type BridgeType string

const (
	BridgeTypeLinear BridgeType = "linear" // 線熱橋
	BridgeTypePoint  BridgeType = "point"  // 点熱橋
)

func BridgeTypeFromString(str string) (BridgeType, error) {
	switch str {
	case "linear":
		return BridgeTypeLinear, nil
	case "point":
		return BridgeTypePoint, nil
	default:
		return "", fmt.Errorf("%w: type %q", ErrInvalidThermalBridge, str)
	}
}

// 熱橋
type ThermalBridge struct {
	Type   BridgeType
	Value  float64 // 線熱貫流率 ψ, W/m K（線熱橋） または 点熱貫流率 χ, W/K（点熱橋）
	Length float64 // 長さ, m（線熱橋のみ）
}

/*
熱橋の熱損失係数を計算する。

	Returns:
		熱損失係数, W/K
*/
func (b ThermalBridge) Coefficient() (float64, error) {
	if b.Value < 0 {
		return 0, fmt.Errorf("%w: negative value %v", ErrInvalidThermalBridge, b.Value)
	}
	switch b.Type {
	case BridgeTypeLinear:
		if b.Length < 0 {
			return 0, fmt.Errorf("%w: negative length %v", ErrInvalidThermalBridge, b.Length)
		}
		return b.Value * b.Length, nil
	case BridgeTypePoint:
		return b.Value, nil
	default:
		return 0, fmt.Errorf("%w: type %q", ErrInvalidThermalBridge, b.Type)
	}
}
