package cooling_load_calc

// ***** 冷房負荷の計算方法（6手法） *****

import "fmt"

// 計算方法
type Method int

// 計算方法
const (
	MethodHeuristic  Method = iota // 経験則（床面積あたり原単位）
	MethodComponent                // 要素加算（貫流＋日射＋内部発熱）
	MethodLegacy                   // 旧基準の周期定常法（要素加算に一律割増し）
	MethodTransient                // 非定常（1次遅れ RC モデル）
	MethodStratified               // 温度成層（居住域空調による低減）
	MethodPredictive               // 予測制御（位相遅れ・減衰・予冷）
)

// 計算方法の数
const NumMethods = 6

// 全計算方法（出力順）
var Methods = [NumMethods]Method{
	MethodHeuristic,
	MethodComponent,
	MethodLegacy,
	MethodTransient,
	MethodStratified,
	MethodPredictive,
}

func (m Method) String() string {
	if m < MethodHeuristic || m > MethodPredictive {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return [...]string{"heuristic", "component", "legacy_periodic", "transient", "stratification", "predictive"}[m]
}

// 表示名
func (m Method) Label() string {
	if m < MethodHeuristic || m > MethodPredictive {
		return m.String()
	}
	return [...]string{"Praktiker", "Recknagel", "VDI 2078 Alt", "VDI 6007 Neu", "Kaltluftsee", "KI-Hybrid"}[m]
}

func MethodFromString(s string) (Method, error) {
	v, ok := map[string]Method{
		"heuristic":       MethodHeuristic,
		"component":       MethodComponent,
		"legacy_periodic": MethodLegacy,
		"transient":       MethodTransient,
		"stratification":  MethodStratified,
		"predictive":      MethodPredictive,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: unknown calculation method %q", ErrInvalidInput, s)
	}
	return v, nil
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(b []byte) error {
	v, err := MethodFromString(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// 計算方法 m の時刻別冷房負荷, W, [m, 24]
type MethodProfiles [NumMethods]HourlyProfile

// 計算方法 m の最大負荷, W, [m]
func (mp *MethodProfiles) Peaks() [NumMethods]float64 {
	var peaks [NumMethods]float64
	for i := range mp {
		peaks[i] = mp[i].Peak()
	}
	return peaks
}

//---------------------------------------------------------------------------------------------------//

// 旧基準の周期定常法の割増し率
const f_legacy_surcharge = 1.20

// 温度成層による空調効率
const eps_stratification = 1.3

// 予冷時間帯（両端を含む）とその負荷低減率
const (
	pre_cool_from = 0
	pre_cool_to   = 6
	f_pre_cool    = 0.75
)

/*
	ゾーンの全計算方法による時刻別冷房負荷を計算する。

	Args:
		b: 建物
		z: ゾーン

	Returns:
		計算方法 m の時刻 h における冷房負荷, W, [m, 24]

	Notes:
		非定常法は要素加算法と同一の外乱曲線を入力とする。
*/
func CalcZone(b *Building, z *Zone) MethodProfiles {
	var mp MethodProfiles

	q_component := calc_component(b, z)

	mp[MethodHeuristic] = calc_heuristic(b, z)
	mp[MethodComponent] = q_component
	mp[MethodLegacy] = calc_legacy(q_component)
	mp[MethodTransient] = calc_transient(q_component, b.mass.tau())
	mp[MethodStratified] = calc_stratified(q_component, b.room_height)
	mp[MethodPredictive] = calc_predictive(b, z)

	return mp
}

/*
	経験則による冷房負荷（時刻によらず一定）

	Notes:
		q = A_f (q_base + q_ori) Fc + (n_hum 100 + q_gen) / max(A_f, 1)
*/
func calc_heuristic(b *Building, z *Zone) HourlyProfile {
	q_base := z.a_f_mul() * (b.standard.base_rate() + z.direction.bonus()) * z.shading.f_c()
	q_int := (float64(z.n_hum)*q_hum_psn_occupied + z.q_gen) / z.a_f_div()
	return constant_profile(q_base + q_int)
}

// 貫流熱取得, W
func get_q_trs(b *Building, z *Zone) float64 {
	return z.a_f_mul() * b.standard.u_value() * b.standard.delta_theta()
}

// 窓からの日射熱取得, W, [24]
func get_q_sol(z *Zone, i_sol HourlyProfile) HourlyProfile {
	return i_sol.scale(z.a_win * z.glazing.g_value() * z.shading.f_c())
}

/*
	要素加算による冷房負荷

	Notes:
		q(h) = A_f U dT + I(h) A_win g Fc + q_int(h)
*/
func calc_component(b *Building, z *Zone) HourlyProfile {
	q_sol := get_q_sol(z, z.direction.irradiance())
	q_int := get_q_int_hs(z.n_hum, z.q_gen, z.a_f_mul(), q_light_component, f_gen_off_component)
	return q_sol.add(q_int).add_const(get_q_trs(b, z))
}

// 旧基準の周期定常法による冷房負荷
func calc_legacy(q_component HourlyProfile) HourlyProfile {
	return q_component.scale(f_legacy_surcharge)
}

/*
	温度成層を考慮した冷房負荷

	Args:
		q_component: 要素加算法による冷房負荷, W, [24]
		_: 室高さ, m（未使用）

	Notes:
		室高さは現在の算定式では用いない。
*/
func calc_stratified(q_component HourlyProfile, _ float64) HourlyProfile {
	return profile_by_hour(func(h int) float64 {
		return q_component[h] / eps_stratification
	})
}

/*
	予測制御による冷房負荷

	Notes:
		日射熱取得を phi 時間遅らせ f 倍に減衰し、予冷時間帯は 0.75 倍とする。
*/
func calc_predictive(b *Building, z *Zone) HourlyProfile {
	i_sol := z.direction.irradiance().roll(b.mass.phi()).scale(b.mass.damping())
	q_sol := get_q_sol(z, i_sol)
	q_int := get_q_int_hs(z.n_hum, z.q_gen, z.a_f_mul(), q_light_predictive, f_gen_off_predictive)
	q := q_sol.add(q_int).add_const(get_q_trs(b, z))
	return q.mul(pre_cool_profile)
}

var pre_cool_profile = profile_by_hour(func(h int) float64 {
	if h >= pre_cool_from && h <= pre_cool_to {
		return f_pre_cool
	}
	return 1.0
})
