package thermal

import (
	"gonum.org/v1/gonum/floats"
)

// 設計条件
type DesignConditions struct {
	WinterComfortTemp float64       // 冬期の室内設定温度, degree C
	SummerComfortTemp float64       // 夏期の室内設定温度, degree C
	GainPerOccupant   float64       // 1人あたりの内部発熱, W/person
	GainPerFloorArea  float64       // 床面積あたりの機器発熱, W/m2
	Air               AirProperties // 空気の物性値
}

func DefaultDesignConditions() DesignConditions {
	return DesignConditions{
		WinterComfortTemp: theta_comfort_winter,
		SummerComfortTemp: theta_comfort_summer,
		GainPerOccupant:   q_gain_psn,
		GainPerFloorArea:  q_gain_floor,
		Air:               DefaultAirProperties(),
	}
}

// 暖房負荷の計算結果, W
type HeatingResult struct {
	TransmissionLoss  float64 `json:"transmission_loss" csv:"transmission_loss"`
	VentilationLoss   float64 `json:"ventilation_loss" csv:"ventilation_loss"`
	InternalGains     float64 `json:"internal_gains" csv:"internal_gains"`
	TotalHeatingPower float64 `json:"total_heating_power" csv:"total_heating_power"`
}

// 冷房負荷の計算結果, W
type CoolingResult struct {
	TransmissionGain  float64 `json:"transmission_gain" csv:"transmission_gain"`
	VentilationGain   float64 `json:"ventilation_gain" csv:"ventilation_gain"`
	InternalGains     float64 `json:"internal_gains" csv:"internal_gains"`
	SolarGains        float64 `json:"solar_gains" csv:"solar_gains"`
	TotalCoolingPower float64 `json:"total_cooling_power" csv:"total_cooling_power"`
}

/*
内部発熱を計算する。

	Args:
		occupants: 在室人数
		floor_area: 床面積, m2

	Returns:
		内部発熱, W
*/
func (dc DesignConditions) InternalGains(occupants int, floor_area float64) float64 {
	return float64(occupants)*dc.GainPerOccupant + floor_area*dc.GainPerFloorArea
}

/*
暖房負荷を計算する。

	Args:
		elements: 外皮の部位, [j]
		air_flow: 換気量, m3/h
		occupants: 在室人数
		floor_area: 床面積, m2
		theta_o: 外気温度, degree C

	Returns:
		暖房負荷の計算結果

	Notes:
		内部発熱は負荷から差し引く。結果が負の場合も 0 に丸めない。
*/
func (dc DesignConditions) HeatingLoad(
	elements []Element,
	air_flow float64,
	occupants int,
	floor_area float64,
	theta_o float64,
) (HeatingResult, error) {
	delta_theta := dc.WinterComfortTemp - theta_o

	q_js, err := transmission_js(elements, delta_theta)
	if err != nil {
		return HeatingResult{}, err
	}

	q_trs := floats.Sum(q_js)
	q_vent := dc.Air.VentFlow(air_flow, delta_theta)
	q_gain := dc.InternalGains(occupants, floor_area)

	return HeatingResult{
		TransmissionLoss:  q_trs,
		VentilationLoss:   q_vent,
		InternalGains:     q_gain,
		TotalHeatingPower: q_trs + q_vent - q_gain,
	}, nil
}

/*
冷房負荷を計算する。

	Args:
		elements: 外皮の部位, [j]
		air_flow: 換気量, m3/h
		occupants: 在室人数
		floor_area: 床面積, m2
		theta_o: 外気温度, degree C
		q_sol: 日射熱取得, W

	Returns:
		冷房負荷の計算結果

	Notes:
		内部発熱と日射熱取得はすべて加算する。
*/
func (dc DesignConditions) CoolingLoad(
	elements []Element,
	air_flow float64,
	occupants int,
	floor_area float64,
	theta_o float64,
	q_sol float64,
) (CoolingResult, error) {
	delta_theta := theta_o - dc.SummerComfortTemp

	q_js, err := transmission_js(elements, delta_theta)
	if err != nil {
		return CoolingResult{}, err
	}

	q_trs := floats.Sum(q_js)
	q_vent := dc.Air.VentFlow(air_flow, delta_theta)
	q_gain := dc.InternalGains(occupants, floor_area)

	return CoolingResult{
		TransmissionGain:  q_trs,
		VentilationGain:   q_vent,
		InternalGains:     q_gain,
		SolarGains:        q_sol,
		TotalCoolingPower: q_trs + q_vent + q_gain + q_sol,
	}, nil
}

// HeatingLoad uses DefaultDesignConditions.
func HeatingLoad(elements []Element, air_flow float64, occupants int, floor_area, theta_o float64) (HeatingResult, error) {
	return DefaultDesignConditions().HeatingLoad(elements, air_flow, occupants, floor_area, theta_o)
}

// CoolingLoad uses DefaultDesignConditions.
func CoolingLoad(elements []Element, air_flow float64, occupants int, floor_area, theta_o, q_sol float64) (CoolingResult, error) {
	return DefaultDesignConditions().CoolingLoad(elements, air_flow, occupants, floor_area, theta_o, q_sol)
}

/*
任意の室内外温度に対する貫流熱損失を計算する。

	Args:
		elements: 外皮の部位, [j]
		theta_r: 室内温度, degree C
		theta_o: 外気温度, degree C

	Returns:
		貫流熱損失, W
*/
func TotalHeatLoss(elements []Element, theta_r, theta_o float64) (float64, error) {
	q_js, err := transmission_js(elements, theta_r-theta_o)
	if err != nil {
		return 0, err
	}
	return floats.Sum(q_js), nil
}
