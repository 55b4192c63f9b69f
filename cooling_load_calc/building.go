package cooling_load_calc

// **** 建物全般のパラメータ ****
// 建物基準、建物の熱容量（構造質量）、室高さ

import "fmt"

// 建物基準（断熱水準）
type Standard int

// 建物基準
const (
	StandardUnknown    Standard = iota - 1 // 不明（既定値を用いる）
	StandardAltbau                         // 旧耐震・無断熱
	StandardBestand                        // 既存
	StandardNeubau                         // 新築（GEG）
	StandardPassivhaus                     // パッシブハウス
)

func (s Standard) String() string {
	if s < StandardAltbau || s > StandardPassivhaus {
		return "unknown"
	}
	return [...]string{"Altbau", "Bestand", "Neubau (GEG)", "Passivhaus"}[s]
}

func StandardFromString(s string) Standard {
	v, ok := map[string]Standard{
		"Altbau":       StandardAltbau,
		"Bestand":      StandardBestand,
		"Neubau (GEG)": StandardNeubau,
		"Passivhaus":   StandardPassivhaus,
	}[s]
	if !ok {
		return StandardUnknown
	}
	return v
}

/*
	外皮の熱貫流率を取得する。

	Returns:
		熱貫流率 U, W/m2K
*/
func (s Standard) u_value() float64 {
	switch s {
	case StandardAltbau:
		return 1.7
	case StandardBestand:
		return 0.8
	case StandardNeubau:
		return 0.28
	case StandardPassivhaus:
		return 0.15
	default:
		return default_u_value
	}
}

/*
	設計室内外温度差を取得する。

	Returns:
		温度差, K
*/
func (s Standard) delta_theta() float64 {
	switch s {
	case StandardAltbau:
		return 9.0
	case StandardBestand:
		return 7.0
	case StandardNeubau:
		return 5.0
	case StandardPassivhaus:
		return 3.0
	default:
		return default_delta_theta
	}
}

// 経験則による床面積あたりの冷房負荷原単位, W/m2
func (s Standard) base_rate() float64 {
	switch s {
	case StandardAltbau:
		return 90.0
	case StandardBestand:
		return 75.0
	case StandardNeubau:
		return 55.0
	case StandardPassivhaus:
		return 35.0
	default:
		return default_base_rate
	}
}

// 不明な建物基準に対する既定値
const (
	default_u_value     = 0.8
	default_delta_theta = 6.0
	default_base_rate   = 75.0
)

//---------------------------------------------------------------------------------------------------//

// 建物の熱容量
type Mass int

// 建物の熱容量
const (
	MassUnknown Mass = iota - 1 // 不明（既定値を用いる）
	MassHeavy                   // 重量（コンクリート・石）
	MassMedium                  // 中量（れんが・木質コンクリート）
	MassLight                   // 軽量（木造・乾式）
)

func (m Mass) String() string {
	if m < MassHeavy || m > MassLight {
		return "unknown"
	}
	return [...]string{"Schwer (Beton/Stein)", "Mittel (Ziegel/Holz-Beton)", "Leicht (Holz/Trockenbau)"}[m]
}

func MassFromString(s string) Mass {
	v, ok := map[string]Mass{
		"Schwer (Beton/Stein)":       MassHeavy,
		"Mittel (Ziegel/Holz-Beton)": MassMedium,
		"Leicht (Holz/Trockenbau)":   MassLight,
	}[s]
	if !ok {
		return MassUnknown
	}
	return v
}

// 時定数 tau, h
func (m Mass) tau() float64 {
	switch m {
	case MassHeavy:
		return 18.0
	case MassMedium:
		return 10.0
	case MassLight:
		return 4.0
	default:
		return default_tau
	}
}

// 日射熱取得の位相遅れ phi, h
func (m Mass) phi() int {
	switch m {
	case MassHeavy:
		return 10
	case MassMedium:
		return 6
	case MassLight:
		return 2
	default:
		return default_phi
	}
}

// 日射熱取得の減衰係数 f
func (m Mass) damping() float64 {
	switch m {
	case MassHeavy:
		return 0.55
	case MassMedium:
		return 0.70
	case MassLight:
		return 0.88
	default:
		return default_damping
	}
}

// 不明な熱容量区分に対する既定値
const (
	default_tau     = 10.0
	default_phi     = 6
	default_damping = 0.70
)

//---------------------------------------------------------------------------------------------------//

type Building struct {
	standard    Standard
	mass        Mass
	room_height float64 // 室高さ, m
}

func NewBuilding(
	standard Standard,
	mass Mass,
	room_height float64,
) (*Building, error) {
	if !(room_height > 0) || !is_finite(room_height) {
		return nil, fmt.Errorf("%w: room height must be positive and finite, got %g", ErrInvalidInput, room_height)
	}
	return &Building{
		standard:    standard,
		mass:        mass,
		room_height: room_height,
	}, nil
}

func CreateBuilding(d *BuildingJson) (*Building, error) {
	room_height := d.RoomHeight
	if room_height == 0 {
		room_height = default_room_height
	}
	return NewBuilding(
		StandardFromString(d.Standard),
		MassFromString(d.Mass),
		room_height,
	)
}

func (b *Building) Standard() Standard { return b.standard }

func (b *Building) Mass() Mass { return b.mass }

func (b *Building) RoomHeight() float64 { return b.room_height }

// 室高さの既定値, m
const default_room_height = 2.5
