package cooling_load_calc

// ***** 建物全体の同時負荷 *****

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// 建物全体の同時負荷
type BuildingLoad struct {
	Profiles       MethodProfiles      // 計算方法 m の時刻 h における建物全体の冷房負荷, W, [m, 24]
	Peaks          [NumMethods]float64 // 計算方法 m の同時最大負荷, W, [m]
	PeakHours      [NumMethods]int     // 計算方法 m の同時最大負荷の発生時刻, [m]
	SumOfZonePeaks [NumMethods]float64 // 計算方法 m のゾーン別最大負荷の単純合計, W, [m]
}

/*
	ゾーン別の冷房負荷を時刻別に合算する。

	Args:
		zone_profiles: ゾーン i の計算方法 m の時刻 h における冷房負荷, W, [i, m, 24]

	Returns:
		建物全体の冷房負荷

	Notes:
		同時最大負荷は合算後の曲線の最大値であり、ゾーン別最大負荷の合計ではない。
		ゾーンが無い場合はすべて 0 とする。
*/
func Aggregate(zone_profiles []MethodProfiles) *BuildingLoad {
	var bl BuildingLoad

	n_zone := len(zone_profiles)
	if n_zone == 0 {
		return &bl
	}

	for _, m := range Methods {
		// ゾーン i の時刻 h における冷房負荷, W, [i, 24]
		q_is_hs := mat.NewDense(n_zone, Hours, nil)
		for i := range zone_profiles {
			q_is_hs.SetRow(i, zone_profiles[i][m][:])
			bl.SumOfZonePeaks[m] += zone_profiles[i][m].Peak()
		}

		for h := 0; h < Hours; h++ {
			bl.Profiles[m][h] = mat.Sum(q_is_hs.ColView(h))
		}
		bl.Peaks[m] = bl.Profiles[m].Peak()
		bl.PeakHours[m] = floats.MaxIdx(bl.Profiles[m][:])
	}

	return &bl
}

// 同時負荷率（同時最大負荷 / ゾーン別最大負荷の合計）。合計が 0 の場合は 0 とする。
func (bl *BuildingLoad) Simultaneity(m Method) float64 {
	if bl.SumOfZonePeaks[m] == 0 {
		return 0
	}
	return bl.Peaks[m] / bl.SumOfZonePeaks[m]
}
