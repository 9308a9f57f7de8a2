package thermal

// 空気の物性値
type AirProperties struct {
	Density      float64 // 空気の密度, kg/m3
	SpecificHeat float64 // 空気の比熱, J/kg K
}

func DefaultAirProperties() AirProperties {
	return AirProperties{
		Density:      rho_a,
		SpecificHeat: c_a,
	}
}

/*
貫流熱流を計算する。

	Args:
		u_value: 熱貫流率, W/m2K
		area: 面積, m2
		temp_diff: 温度差, K

	Returns:
		熱流, W

	Notes:
		暖房時は室内 - 外気、冷房時は外気 - 室内の温度差を与える。
*/
func HeatFlow(u_value, area, temp_diff float64) float64 {
	return u_value * area * temp_diff
}

/*
換気による熱流を計算する。

	Args:
		air_flow: 換気量, m3/h
		temp_diff: 温度差, K

	Returns:
		熱流, W
*/
func VentFlow(air_flow, temp_diff float64) float64 {
	return DefaultAirProperties().VentFlow(air_flow, temp_diff)
}

// VentFlow is VentFlow with the receiver's density and specific heat.
func (a AirProperties) VentFlow(air_flow, temp_diff float64) float64 {
	// m3/h -> m3/s
	v_s := air_flow / s_h
	return v_s * a.Density * a.SpecificHeat * temp_diff
}
