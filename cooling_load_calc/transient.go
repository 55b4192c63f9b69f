package cooling_load_calc

// ***** 非定常法（1次遅れ RC モデル） *****

// 助走計算を含む計算サイクル数（1サイクル = 24時間）。最終サイクルを結果とする。
const transientCycles = 4

/*
	1次遅れ系の状態

	Notes:
		s(n+1) = s(n) + (x(n+1) - s(n)) / (tau + 1)
*/
type lowPassState struct {
	tau float64 // 時定数, h
	s   float64 // 直前の時刻の応答値, W
}

func (st *lowPassState) step(x float64) float64 {
	st.s = st.s + (x-st.s)/(st.tau+1)
	return st.s
}

/*
	非定常法による冷房負荷

	Args:
		q_ext: 外乱（要素加算法による冷房負荷）, W, [24]
		tau: 時定数, h

	Returns:
		周期定常に達した最終サイクルの冷房負荷, W, [24]
*/
func calc_transient(q_ext HourlyProfile, tau float64) HourlyProfile {
	cycles := simulate_transient(q_ext, tau, transientCycles)
	return cycles[len(cycles)-1]
}

/*
	初期値 0 から n_cycle サイクル分の応答を計算する。

	Returns:
		サイクル c の時刻 h における応答, W, [c, 24]

	Notes:
		時刻 0 の直前の状態は前サイクルの時刻 23 の応答とする。
*/
func simulate_transient(q_ext HourlyProfile, tau float64, n_cycle int) []HourlyProfile {
	st := lowPassState{tau: tau}
	out := make([]HourlyProfile, n_cycle)
	for c := 0; c < n_cycle; c++ {
		for h := 0; h < Hours; h++ {
			out[c][h] = st.step(q_ext[h])
		}
	}
	return out
}
