package cooling_load_calc

// ***** 機器選定 *****

import "fmt"

// 機器選定の結果
type DeviceRecommendation struct {
	Primary      CatalogEntry  `json:"primary"`
	Alternate    *CatalogEntry `json:"alternate,omitempty"` // 一段小さい能力区分（最小区分の場合は nil）
	RequiredKW   float64       `json:"required_kw"`         // 必要能力, kW
	PeakW        float64       `json:"peak_w"`              // 最大負荷, W
	SafetyFactor float64       `json:"safety_factor"`
	Oversized    bool          `json:"oversized"` // 必要能力を満たす区分が無く最大区分を選定した
}

/*
	最大負荷に対して機器を選定する。

	Args:
		peak_w: 最大負荷, W
		safety: 安全率
		series: カタログシリーズ名

	Returns:
		必要能力以上の最小の能力区分の機器と、その一段小さい区分の機器

	Notes:
		必要能力を満たす区分が無い場合は最大区分を選定し Oversized とする（エラーとはしない）。
*/
func (c *DeviceCatalog) Match(peak_w float64, safety float64, series string) (DeviceRecommendation, error) {
	if !(safety > 0) || !is_finite(safety) {
		return DeviceRecommendation{}, fmt.Errorf("%w: safety factor must be positive and finite, got %g", ErrInvalidInput, safety)
	}
	if !is_finite(peak_w) {
		return DeviceRecommendation{}, fmt.Errorf("%w: peak load must be finite, got %g", ErrInvalidInput, peak_w)
	}
	es, err := c.lookup(series)
	if err != nil {
		return DeviceRecommendation{}, err
	}

	required_kw := get_required_kw(peak_w, safety)

	idx := -1
	for i, e := range es {
		if e.KWClass >= required_kw {
			idx = i
			break
		}
	}

	oversized := false
	if idx < 0 {
		idx = len(es) - 1
		oversized = true
	}

	rec := DeviceRecommendation{
		Primary:      es[idx],
		RequiredKW:   required_kw,
		PeakW:        peak_w,
		SafetyFactor: safety,
		Oversized:    oversized,
	}
	if idx > 0 {
		alt := es[idx-1]
		rec.Alternate = &alt
	}
	return rec, nil
}

// 必要能力, kW
func get_required_kw(peak_w float64, safety float64) float64 {
	return peak_w * safety / 1000.0
}
