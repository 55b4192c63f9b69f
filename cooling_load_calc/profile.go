package cooling_load_calc

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// 1日の時刻数
const Hours = 24

// 時刻別の値（0時から23時、23時の次は0時）
type HourlyProfile [Hours]float64

// 24 値のスライスから時刻別の値を作成する。
func ProfileFromSlice(v []float64) (HourlyProfile, error) {
	var p HourlyProfile
	if len(v) != Hours {
		return p, fmt.Errorf("%w: hourly profile must have %d values, got %d", ErrInvalidInput, Hours, len(v))
	}
	copy(p[:], v)
	return p, nil
}

func (p *HourlyProfile) UnmarshalJSON(b []byte) error {
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	q, err := ProfileFromSlice(v)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// 最大値
func (p HourlyProfile) Peak() float64 {
	return floats.Max(p[:])
}

// 最大値が最初に現れる時刻
func (p HourlyProfile) PeakHour() int {
	return floats.MaxIdx(p[:])
}

// 日積算値, Wh
func (p HourlyProfile) Sum() float64 {
	return floats.Sum(p[:])
}

func (p HourlyProfile) scale(c float64) HourlyProfile {
	floats.Scale(c, p[:])
	return p
}

func (p HourlyProfile) add(q HourlyProfile) HourlyProfile {
	floats.Add(p[:], q[:])
	return p
}

func (p HourlyProfile) add_const(c float64) HourlyProfile {
	floats.AddConst(c, p[:])
	return p
}

func (p HourlyProfile) mul(q HourlyProfile) HourlyProfile {
	floats.Mul(p[:], q[:])
	return p
}

/*
	時刻方向に巡回シフトする。

	Args:
		shift: シフト量, h（正の値で遅れ）

	Returns:
		out[h] = p[(h - shift) mod 24]
*/
func (p HourlyProfile) roll(shift int) HourlyProfile {
	var out HourlyProfile
	for h := 0; h < Hours; h++ {
		out[(((h+shift)%Hours)+Hours)%Hours] = p[h]
	}
	return out
}

// 時刻ごとに値を与えて曲線を作成する。
func profile_by_hour(f func(h int) float64) HourlyProfile {
	var p HourlyProfile
	for h := range p {
		p[h] = f(h)
	}
	return p
}

func constant_profile(c float64) HourlyProfile {
	var p HourlyProfile
	return p.add_const(c)
}
