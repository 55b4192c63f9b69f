package cooling_load_calc

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type InputJson struct {
	Project  ProjectJson  `json:"project" yaml:"project"`
	Building BuildingJson `json:"building" yaml:"building"`
	Zones    []ZoneJson   `json:"zones" yaml:"zones"`
}

type ProjectJson struct {
	Name     string `json:"name" yaml:"name"`
	Customer string `json:"customer" yaml:"customer"`
	Engineer string `json:"engineer" yaml:"engineer"`
	Company  string `json:"company" yaml:"company"`
}

type BuildingJson struct {
	Standard   string  `json:"standard" yaml:"standard"`
	Mass       string  `json:"mass" yaml:"mass"`
	RoomHeight float64 `json:"room_height" yaml:"room_height"`
}

type ZoneJson struct {
	Name        string   `json:"name" yaml:"name"`
	FloorArea   float64  `json:"floor_area" yaml:"floor_area"`
	WindowArea  float64  `json:"window_area" yaml:"window_area"`
	Orientation string   `json:"orientation" yaml:"orientation"`
	Glazing     string   `json:"glazing" yaml:"glazing"`
	Shading     string   `json:"shading" yaml:"shading"`
	Occupants   int      `json:"occupants" yaml:"occupants"`
	Equipment   float64  `json:"equipment" yaml:"equipment"`
	DeviceKW    *float64 `json:"device_kw,omitempty" yaml:"device_kw,omitempty"`
}

/*
	計算条件ファイルを読み込む。

	Args:
		path: ファイルパスまたは http(s) の URL

	Notes:
		拡張子が .yaml/.yml の場合は YAML、それ以外は JSON とする。
*/
func ReadInput(path string) (*InputJson, error) {
	var body []byte
	ext := filepath.Ext(path)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		u, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
		}
		ext = filepath.Ext(u.Path)

		resp, err := http.Get(path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("get %s: %s", path, resp.Status)
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		body, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	var rd InputJson
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(body, &rd); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
		}
	default:
		if err := json.Unmarshal(body, &rd); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
		}
	}
	return &rd, nil
}

//---------------------------------------------------------------------------------------------------//

// ゾーンの計算結果
type ZoneResult struct {
	Name            string
	FloorArea       float64
	Profiles        MethodProfiles
	Peaks           [NumMethods]float64
	Recommendations [NumMethods]DeviceRecommendation
	Selected        *CatalogEntry // 最終選定機器（設置なしの場合は nil）
}

// 計算結果
type Result struct {
	Zones           []ZoneResult
	Building        *BuildingLoad
	TotalFloorArea  float64 // m2
	InstalledKW     float64 // 最終選定機器の能力区分の合計, kW
	ListPriceTotal  float64 // 最終選定機器の定価の合計, EUR
	Series          string
	SelectionMethod Method
	SafetyFactors   SafetyFactors
}

/*
	coreメインプログラム

	Args:
		rd: 計算条件
		cfg: 設定
		catalog: 機器カタログ

	Returns:
		計算結果

	Notes:
		入力の検証はすべて計算の前に行う。ゾーンごとの計算は並行に行う。
*/
func Calc(rd *InputJson, cfg *Config, catalog *DeviceCatalog) (*Result, error) {
	opts, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if _, err := catalog.lookup(opts.series); err != nil {
		return nil, err
	}

	b, err := CreateBuilding(&rd.Building)
	if err != nil {
		return nil, err
	}
	zs, err := NewZones(rd.Zones)
	if err != nil {
		return nil, err
	}
	for _, z := range zs.zones {
		if z.device_kw == nil || *z.device_kw == 0 {
			continue
		}
		if _, ok := catalog.Entry(opts.series, *z.device_kw); !ok {
			return nil, fmt.Errorf("%w: zone %q: no %g kW device in series %q", ErrInvalidInput, z.name, *z.device_kw, opts.series)
		}
	}

	zrs := make([]ZoneResult, zs.Len())

	var g errgroup.Group
	for i := 0; i < zs.Len(); i++ {
		i := i
		g.Go(func() error {
			zr, err := calc_zone_result(b, zs.Zone(i), catalog, opts)
			if err != nil {
				return err
			}
			zrs[i] = zr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profiles := make([]MethodProfiles, len(zrs))
	for i := range zrs {
		profiles[i] = zrs[i].Profiles
	}

	result := &Result{
		Zones:           zrs,
		Building:        Aggregate(profiles),
		TotalFloorArea:  zs.total_floor_area(),
		Series:          opts.series,
		SelectionMethod: opts.selection,
		SafetyFactors:   opts.safety,
	}
	for _, zr := range zrs {
		if zr.Selected != nil {
			result.InstalledKW += zr.Selected.KWClass
			result.ListPriceTotal += zr.Selected.Price
		}
	}
	return result, nil
}

func calc_zone_result(b *Building, z *Zone, catalog *DeviceCatalog, opts calc_options) (ZoneResult, error) {
	zr := ZoneResult{
		Name:      z.name,
		FloorArea: z.a_f,
		Profiles:  CalcZone(b, z),
	}
	zr.Peaks = zr.Profiles.Peaks()

	for _, m := range Methods {
		rec, err := catalog.Match(zr.Peaks[m], opts.safety.Get(m), opts.series)
		if err != nil {
			return zr, fmt.Errorf("zone %q, method %s: %w", z.name, m, err)
		}
		zr.Recommendations[m] = rec
	}

	switch {
	case z.device_kw == nil:
		e := zr.Recommendations[opts.selection].Primary
		zr.Selected = &e
	case *z.device_kw > 0:
		e, _ := catalog.Entry(opts.series, *z.device_kw)
		zr.Selected = &e
	}
	return zr, nil
}

/*
	負荷計算処理の実行

	Args:
		logger
		house_data_path: 計算条件ファイル（JSON/YAML）へのパスまたは URL
		output_data_dir: 出力フォルダへのパス（空の場合は出力しない）
		cfg: 設定
		catalog: 機器カタログ
*/
func Run(
	logger *slog.Logger,
	house_data_path string,
	output_data_dir string,
	cfg *Config,
	catalog *DeviceCatalog,
) (*Result, error) {
	logger.Info("reading input", "path", house_data_path)
	rd, err := ReadInput(house_data_path)
	if err != nil {
		return nil, err
	}

	logger.Info("calculation started", "zones", len(rd.Zones))
	result, err := Calc(rd, cfg, catalog)
	if err != nil {
		return nil, err
	}
	for _, m := range Methods {
		logger.Info("building peak",
			"method", m.String(),
			"peak_w", result.Building.Peaks[m],
			"hour", result.Building.PeakHours[m],
			"simultaneity", result.Building.Simultaneity(m),
		)
	}
	for _, zr := range result.Zones {
		for _, m := range Methods {
			if zr.Recommendations[m].Oversized {
				logger.Warn("no device large enough, largest class selected",
					"zone", zr.Name,
					"method", m.String(),
					"required_kw", zr.Recommendations[m].RequiredKW,
				)
			}
		}
	}

	if output_data_dir == "" {
		return result, nil
	}

	if err := os.MkdirAll(output_data_dir, 0o755); err != nil {
		return nil, err
	}

	rec := NewRecorder(result)

	hourly_path := filepath.Join(output_data_dir, "result_hourly.csv")
	logger.Info("saving hourly results", "path", hourly_path)
	if err := write_file(hourly_path, rec.export_hourly); err != nil {
		return nil, err
	}

	peaks_path := filepath.Join(output_data_dir, "result_peaks.csv")
	logger.Info("saving peak results", "path", peaks_path)
	if err := write_file(peaks_path, rec.export_peaks); err != nil {
		return nil, err
	}

	report_path := filepath.Join(output_data_dir, "transfer_report.json")
	logger.Info("saving transfer report", "path", report_path)
	report := NewTransferReport(result, rd.Project)
	if err := write_file(report_path, report.Write); err != nil {
		return nil, err
	}

	return result, nil
}

func write_file(path string, export func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
