package thermal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// 表面熱伝達抵抗
type SurfaceResistance struct {
	Interior float64 // 室内側表面熱伝達抵抗 Rsi, m2K/W
	Exterior float64 // 室外側表面熱伝達抵抗 Rse, m2K/W
}

// 材料の層
type MaterialLayer struct {
	Name                string             // 名称
	ThermalConductivity float64            // 熱伝導率 λ, W/m K
	Thickness           float64            // 厚さ, m
	SurfaceResistance   *SurfaceResistance // 表面熱伝達抵抗（UValue の計算には含めない）
}

func (l MaterialLayer) validate() error {
	if !(l.ThermalConductivity > 0) || math.IsInf(l.ThermalConductivity, 0) {
		return fmt.Errorf("%w: %q: thermal conductivity %v W/mK", ErrInvalidMaterial, l.Name, l.ThermalConductivity)
	}
	if !(l.Thickness > 0) || math.IsInf(l.Thickness, 0) {
		return fmt.Errorf("%w: %q: thickness %v m", ErrInvalidMaterial, l.Name, l.Thickness)
	}
	return nil
}

/*
材料の層の熱抵抗を計算する。

	Args:
		layer: 材料の層

	Returns:
		熱抵抗, m2K/W
*/
func Resistance(layer MaterialLayer) (float64, error) {
	if err := layer.validate(); err != nil {
		return 0, err
	}
	return layer.Thickness / layer.ThermalConductivity, nil
}

// Resistances returns the thermal resistance of every layer, m2K/W, [k]
func Resistances(layers []MaterialLayer) ([]float64, error) {
	r_ks := make([]float64, len(layers))
	for k, layer := range layers {
		r, err := Resistance(layer)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", k, err)
		}
		r_ks[k] = r
	}
	return r_ks, nil
}

/*
層構成から熱貫流率を計算する。

	Args:
		layers: 材料の層, [k]

	Returns:
		熱貫流率, W/m2K

	Notes:
		室内側・室外側の表面熱伝達抵抗は加算しない。
*/
func UValue(layers []MaterialLayer) (float64, error) {
	if len(layers) == 0 {
		return 0, ErrEmptyAssembly
	}

	r_ks, err := Resistances(layers)
	if err != nil {
		return 0, err
	}

	return 1.0 / floats.Sum(r_ks), nil
}
