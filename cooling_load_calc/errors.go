package cooling_load_calc

import "errors"

var (
	// 計算前に棄却される入力
	ErrInvalidInput = errors.New("invalid input")

	// カタログに存在しない（または空の）シリーズ
	ErrUnknownSeries = errors.New("unknown catalog series")
)
