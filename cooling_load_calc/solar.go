package cooling_load_calc

// ***** 方位別の日射量 *****
// 夏季設計日の方位別鉛直面日射量（時刻別 24 値）

// 窓の方位
type Orientation int

// 窓の方位
const (
	OrientationUnknown   Orientation = iota - 1 // 不明（既定値を用いる）
	OrientationNorth                            // 北
	OrientationEast                             // 東
	OrientationSouth                            // 南
	OrientationWest                             // 西
	OrientationSouthEast                        // 南東
	OrientationSouthWest                        // 南西
)

func (o Orientation) String() string {
	if o < OrientationNorth || o > OrientationSouthWest {
		return "unknown"
	}
	return [...]string{"NORD", "OST", "SUED", "WEST", "SUED-OST", "SUED-WEST"}[o]
}

func OrientationFromString(s string) Orientation {
	v, ok := map[string]Orientation{
		"NORD":      OrientationNorth,
		"OST":       OrientationEast,
		"SUED":      OrientationSouth,
		"WEST":      OrientationWest,
		"SUED-OST":  OrientationSouthEast,
		"SUED-WEST": OrientationSouthWest,
	}[s]
	if !ok {
		return OrientationUnknown
	}
	return v
}

// 経験則による方位別の負荷原単位の割増し, W/m2
func (o Orientation) bonus() float64 {
	switch o {
	case OrientationSouth:
		return 15.0
	case OrientationSouthEast, OrientationSouthWest:
		return 12.0
	case OrientationWest:
		return 8.0
	case OrientationEast:
		return 5.0
	case OrientationNorth:
		return 0.0
	default:
		return default_orientation_bonus
	}
}

const default_orientation_bonus = 0.0

/*
	方位別の時刻別日射量を取得する。

	Returns:
		時刻 h における日射量, W/m2, [24]

	Notes:
		不明な方位の場合は南面の値を用いる。
*/
func (o Orientation) irradiance() HourlyProfile {
	switch o {
	case OrientationNorth:
		return solar_north
	case OrientationEast:
		return solar_east
	case OrientationSouth:
		return solar_south
	case OrientationWest:
		return solar_west
	case OrientationSouthEast:
		return solar_south_east
	case OrientationSouthWest:
		return solar_south_west
	default:
		return solar_south
	}
}

func (o Orientation) Irradiance() HourlyProfile {
	return o.irradiance()
}

var (
	solar_north      = HourlyProfile{20, 20, 20, 20, 20, 40, 60, 80, 100, 110, 120, 120, 120, 120, 110, 100, 80, 60, 40, 20, 20, 20, 20, 20}
	solar_east       = HourlyProfile{0, 0, 0, 0, 100, 350, 550, 650, 680, 600, 450, 250, 150, 100, 80, 60, 40, 20, 0, 0, 0, 0, 0, 0}
	solar_south      = HourlyProfile{0, 0, 0, 0, 0, 50, 150, 300, 450, 550, 620, 650, 650, 620, 550, 450, 300, 150, 50, 0, 0, 0, 0, 0}
	solar_west       = HourlyProfile{0, 0, 0, 0, 0, 0, 20, 50, 70, 90, 110, 150, 250, 450, 600, 680, 650, 550, 350, 150, 0, 0, 0, 0}
	solar_south_east = HourlyProfile{0, 0, 0, 50, 200, 450, 580, 650, 620, 500, 350, 200, 120, 90, 70, 40, 20, 0, 0, 0, 0, 0, 0, 0}
	solar_south_west = HourlyProfile{0, 0, 0, 0, 0, 0, 20, 50, 80, 120, 200, 350, 500, 620, 650, 580, 450, 250, 80, 20, 0, 0, 0, 0}
)
