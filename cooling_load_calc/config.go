package cooling_load_calc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// 設定（建物の計算条件以外）
type Config struct {
	CatalogSeries   string             `toml:"catalog_series"`
	CatalogFile     string             `toml:"catalog_file"`     // 空の場合は既定のカタログ
	SelectionMethod string             `toml:"selection_method"` // 最終選定に用いる計算方法
	SafetyFactors   map[string]float64 `toml:"safety_factors"`   // 計算方法ごとの安全率
}

func DefaultConfig() *Config {
	sf := make(map[string]float64, NumMethods)
	for _, m := range Methods {
		sf[m.String()] = DefaultSafetyFactor
	}
	return &Config{
		CatalogSeries:   SeriesWindFree,
		SelectionMethod: MethodHeuristic.String(),
		SafetyFactors:   sf,
	}
}

/*
	設定ファイル（TOML）を読み込む。

	Notes:
		ファイルが存在しない場合は既定値で作成する。
		ファイルに無い項目は既定値とする。
*/
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := toml.NewEncoder(f).Encode(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := cfg.resolve(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// 設定された機器カタログ（指定がない場合は既定のカタログ）
func (c *Config) Catalog() (*DeviceCatalog, error) {
	if c.CatalogFile == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(c.CatalogFile)
}

type calc_options struct {
	series    string
	selection Method
	safety    SafetyFactors
}

func (c *Config) resolve() (calc_options, error) {
	if c == nil {
		c = DefaultConfig()
	}
	var opts calc_options

	opts.series = c.CatalogSeries
	if opts.series == "" {
		opts.series = SeriesWindFree
	}

	opts.selection = MethodHeuristic
	if c.SelectionMethod != "" {
		m, err := MethodFromString(c.SelectionMethod)
		if err != nil {
			return opts, err
		}
		opts.selection = m
	}

	sf, err := SafetyFactorsFromMap(c.SafetyFactors)
	if err != nil {
		return opts, err
	}
	opts.safety = sf

	return opts, nil
}
