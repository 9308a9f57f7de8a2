package thermal

// 空気の比熱, J/kg K
const c_a = 1005.0

// 空気の密度, kg/m3
const rho_a = 1.2

// 1時間の秒数, s/h
const s_h = 3600.0

// 冬期の室内設定温度, degree C
const theta_comfort_winter = 19.0

// 夏期の室内設定温度, degree C
const theta_comfort_summer = 26.0

// 1人あたりの内部発熱, W/person
const q_gain_psn = 80.0

// 床面積あたりの機器発熱, W/m2
const q_gain_floor = 5.0
