package cooling_load_calc

// ***** 内部発熱（人体・機器・照明） *****

/*
	内部発熱の時刻別値を計算する。

	Args:
		n_hum: 在室人数
		q_gen: 機器発熱, W
		a_f: 床面積, m2
		q_light: 在室時間帯の床面積あたりの照明等発熱, W/m2
		f_gen_off: 在室時間帯外の機器発熱の残存率

	Returns:
		時刻 h における内部発熱, W, [24]

	Notes:
		在室時間帯（8時から18時まで）は人体 100 W/人、それ以外は 50 W/人とする。
*/
func get_q_int_hs(n_hum int, q_gen float64, a_f float64, q_light float64, f_gen_off float64) HourlyProfile {
	return profile_by_hour(func(h int) float64 {
		if is_occupied_hour(h) {
			return float64(n_hum)*q_hum_psn_occupied + q_gen + a_f*q_light
		}
		return float64(n_hum)*q_hum_psn_unoccupied + q_gen*f_gen_off
	})
}

func is_occupied_hour(h int) bool {
	return h >= occupied_from && h <= occupied_to
}

// 在室時間帯（両端を含む）
const (
	occupied_from = 8
	occupied_to   = 18
)

// 1人あたりの人体発熱, W
const (
	q_hum_psn_occupied   = 100.0
	q_hum_psn_unoccupied = 50.0
)

// 床面積あたりの照明等発熱, W/m2
const (
	q_light_component  = 8.0
	q_light_predictive = 6.0
)

// 在室時間帯外の機器発熱の残存率
const (
	f_gen_off_component  = 0.1
	f_gen_off_predictive = 0.05
)
