package cooling_load_calc

import "fmt"

// 既定の安全率（設計余裕 10%）
const DefaultSafetyFactor = 1.10

// 計算方法 m の機器選定に用いる安全率, [m]
type SafetyFactors [NumMethods]float64

func DefaultSafetyFactors() SafetyFactors {
	var sf SafetyFactors
	for i := range sf {
		sf[i] = DefaultSafetyFactor
	}
	return sf
}

// 計算方法名をキーとする値で既定値を上書きする。
func SafetyFactorsFromMap(m map[string]float64) (SafetyFactors, error) {
	sf := DefaultSafetyFactors()
	for k, v := range m {
		method, err := MethodFromString(k)
		if err != nil {
			return sf, err
		}
		if !(v > 0) || !is_finite(v) {
			return sf, fmt.Errorf("%w: safety factor for %s must be positive and finite, got %g", ErrInvalidInput, method, v)
		}
		sf[method] = v
	}
	return sf, nil
}

func (sf SafetyFactors) Get(m Method) float64 {
	return sf[m]
}
