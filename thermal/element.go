package thermal

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// 外皮部位の種類
type ElementType int

const (
	ElementTypeWall   ElementType = iota // "wall": 壁
	ElementTypeFloor                     // "floor": 床
	ElementTypeRoof                      // "roof": 屋根
	ElementTypeWindow                    // "window": 窓
	ElementTypeDoor                      // "door": ドア
)

var elementTypeNames = [...]string{"wall", "floor", "roof", "window", "door"}

func (t ElementType) String() string {
	if t < 0 || int(t) >= len(elementTypeNames) {
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
	return elementTypeNames[t]
}

func ElementTypeFromString(str string) (ElementType, error) {
	switch str {
	case "wall":
		return ElementTypeWall, nil
	case "floor":
		return ElementTypeFloor, nil
	case "roof":
		return ElementTypeRoof, nil
	case "window":
		return ElementTypeWindow, nil
	case "door":
		return ElementTypeDoor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidElementType, str)
	}
}

// 日よけ（隣棟などによる日射の遮蔽）
type SolarMask struct {
	Angle    float64 // 遮蔽角, degree
	Distance float64 // 遮蔽物までの距離, m
}

// 外皮の部位
type Element struct {
	Name      string
	Type      ElementType
	Area      float64         // 面積, m2
	Layers    []MaterialLayer // 層構成（室内側から順）
	Direction Direction       // 方位
	Tilt      *float64        // 傾斜角, degree
	SolarMask *SolarMask      // 日よけ
	Bridges   []ThermalBridge // 熱橋
}

// 熱貫流率, W/m2K
func (e Element) UValue() (float64, error) {
	return UValue(e.Layers)
}

/*
負荷集計に寄与するか否か。

	Notes:
		面積 0 または層構成が空の部位は寄与 0 として扱い、ErrEmptyAssembly を返さない。
*/
func (e Element) contributes() bool {
	return e.Area != 0 && len(e.Layers) > 0
}

/*
部位の熱橋による熱損失係数の合計を計算する。

	Returns:
		熱損失係数, W/K
*/
func (e Element) BridgeCoefficient() (float64, error) {
	h_brs := make([]float64, len(e.Bridges))
	for i, b := range e.Bridges {
		h, err := b.Coefficient()
		if err != nil {
			return 0, fmt.Errorf("%q bridge %d: %w", e.Name, i, err)
		}
		h_brs[i] = h
	}
	return floats.Sum(h_brs), nil
}

/*
各部位の貫流熱流を計算する。

	Args:
		elements: 外皮の部位, [j]
		temp_diff: 温度差, K

	Returns:
		部位 j の貫流熱流, W, [j]
*/
func transmission_js(elements []Element, temp_diff float64) ([]float64, error) {
	q_js := make([]float64, len(elements))
	for j, e := range elements {
		if !e.contributes() {
			continue
		}
		u, err := e.UValue()
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", j, e.Name, err)
		}
		q_js[j] = HeatFlow(u, e.Area, temp_diff)
	}
	return q_js, nil
}
