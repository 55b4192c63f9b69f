package cooling_load_calc

import (
	"fmt"
	"math"
)

// ガラスの種類
type Glazing int

// ガラスの種類
const (
	GlazingUnknown    Glazing = iota - 1 // 不明（既定値を用いる）
	GlazingSingle                        // 単板
	GlazingDouble                        // 複層
	GlazingTriple                        // 三層
	GlazingSolarCtrl                     // 日射遮蔽型
)

func (g Glazing) String() string {
	if g < GlazingSingle || g > GlazingSolarCtrl {
		return "unknown"
	}
	return [...]string{"Einfach", "Doppel", "Dreifach", "Sonnenschutz"}[g]
}

func GlazingFromString(s string) Glazing {
	v, ok := map[string]Glazing{
		"Einfach":      GlazingSingle,
		"Doppel":       GlazingDouble,
		"Dreifach":     GlazingTriple,
		"Sonnenschutz": GlazingSolarCtrl,
	}[s]
	if !ok {
		return GlazingUnknown
	}
	return v
}

// 日射熱取得率 g
func (g Glazing) g_value() float64 {
	switch g {
	case GlazingSingle:
		return 0.85
	case GlazingDouble:
		return 0.65
	case GlazingTriple:
		return 0.50
	case GlazingSolarCtrl:
		return 0.32
	default:
		return default_g_value
	}
}

const default_g_value = 0.65

//---------------------------------------------------------------------------------------------------//

// 日除けの種類
type Shading int

// 日除けの種類
const (
	ShadingUnknown  Shading = iota - 1 // 不明（既定値を用いる）
	ShadingNone                        // なし
	ShadingCurtain                     // カーテン（室内側）
	ShadingBlinds                      // 外付けブラインド
	ShadingShutters                    // シャッター
)

func (sh Shading) String() string {
	if sh < ShadingNone || sh > ShadingShutters {
		return "unknown"
	}
	return [...]string{"Keine", "Vorhang (Innen)", "Raffstore (Aussen)", "Rollladen"}[sh]
}

func ShadingFromString(s string) Shading {
	v, ok := map[string]Shading{
		"Keine":              ShadingNone,
		"Vorhang (Innen)":    ShadingCurtain,
		"Raffstore (Aussen)": ShadingBlinds,
		"Rollladen":          ShadingShutters,
	}[s]
	if !ok {
		return ShadingUnknown
	}
	return v
}

// 日除けによる日射低減係数 Fc
func (sh Shading) f_c() float64 {
	switch sh {
	case ShadingNone:
		return 1.0
	case ShadingCurtain:
		return 0.6
	case ShadingBlinds:
		return 0.25
	case ShadingShutters:
		return 0.15
	default:
		return default_f_c
	}
}

const default_f_c = 1.0

//---------------------------------------------------------------------------------------------------//

// ゾーン
type Zone struct {
	name      string
	a_f       float64     // 床面積, m2
	a_win     float64     // 窓面積, m2
	direction Orientation // 窓の方位
	glazing   Glazing     // ガラスの種類
	shading   Shading     // 日除けの種類
	n_hum     int         // 在室人数
	q_gen     float64     // 機器発熱, W
	device_kw *float64    // 最終選定機器の能力区分, kW（nil の場合は自動選定、0 は設置なし）
}

func NewZone(
	name string,
	a_f float64,
	a_win float64,
	direction Orientation,
	glazing Glazing,
	shading Shading,
	n_hum int,
	q_gen float64,
) (*Zone, error) {
	if !is_finite(a_f) {
		return nil, fmt.Errorf("%w: zone %q: floor area must be finite, got %g", ErrInvalidInput, name, a_f)
	}
	if !is_finite(a_win) {
		return nil, fmt.Errorf("%w: zone %q: window area must be finite, got %g", ErrInvalidInput, name, a_win)
	}
	if !is_finite(q_gen) {
		return nil, fmt.Errorf("%w: zone %q: equipment load must be finite, got %g", ErrInvalidInput, name, q_gen)
	}
	if a_win < 0 {
		return nil, fmt.Errorf("%w: zone %q: window area must not be negative, got %g", ErrInvalidInput, name, a_win)
	}
	if n_hum < 0 {
		return nil, fmt.Errorf("%w: zone %q: occupants must not be negative, got %d", ErrInvalidInput, name, n_hum)
	}
	if q_gen < 0 {
		return nil, fmt.Errorf("%w: zone %q: equipment load must not be negative, got %g", ErrInvalidInput, name, q_gen)
	}
	return &Zone{
		name:      name,
		a_f:       a_f,
		a_win:     a_win,
		direction: direction,
		glazing:   glazing,
		shading:   shading,
		n_hum:     n_hum,
		q_gen:     q_gen,
	}, nil
}

func is_finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (z *Zone) Name() string { return z.name }

func (z *Zone) FloorArea() float64 { return z.a_f }

// 床面積（乗数として用いる場合）。負の値は 0 とする。
func (z *Zone) a_f_mul() float64 {
	if z.a_f < 0 {
		return 0
	}
	return z.a_f
}

// 床面積（除数として用いる場合）。1 m2 を下限とする。
func (z *Zone) a_f_div() float64 {
	if z.a_f < min_floor_area_div {
		return min_floor_area_div
	}
	return z.a_f
}

// 除数として用いる床面積の下限, m2
const min_floor_area_div = 1.0

//---------------------------------------------------------------------------------------------------//

type Zones struct {
	zones []*Zone // ゾーン, [I]
}

func NewZones(ds []ZoneJson) (*Zones, error) {
	zones := make([]*Zone, len(ds))
	for i, d := range ds {
		z, err := _get_zone(i, d)
		if err != nil {
			return nil, err
		}
		zones[i] = z
	}
	return &Zones{zones: zones}, nil
}

func _get_zone(i int, d ZoneJson) (*Zone, error) {
	name := d.Name
	if name == "" {
		name = fmt.Sprintf("Raum %d", i+1)
	}

	z, err := NewZone(
		name,
		d.FloorArea,
		d.WindowArea,
		OrientationFromString(d.Orientation),
		GlazingFromString(d.Glazing),
		ShadingFromString(d.Shading),
		d.Occupants,
		d.Equipment,
	)
	if err != nil {
		return nil, err
	}
	z.device_kw = d.DeviceKW
	return z, nil
}

func (zs *Zones) Len() int { return len(zs.zones) }

func (zs *Zones) Zone(i int) *Zone { return zs.zones[i] }

// 全ゾーンの床面積の合計, m2
func (zs *Zones) total_floor_area() float64 {
	a_f := 0.0
	for _, z := range zs.zones {
		a_f += z.a_f_mul()
	}
	return a_f
}
