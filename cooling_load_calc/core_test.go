package cooling_load_calc

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func referenceInput() *InputJson {
	return &InputJson{
		Project: ProjectJson{Name: "Musterhaus", Customer: "Familie Muster", Engineer: "A. Planer", Company: "Klima GmbH"},
		Building: BuildingJson{
			Standard:   "Bestand",
			Mass:       "Mittel (Ziegel/Holz-Beton)",
			RoomHeight: 2.5,
		},
		Zones: []ZoneJson{referenceZone()},
	}
}

func TestCalcReferenceZone(t *testing.T) {
	result, err := Calc(referenceInput(), nil, DefaultCatalog())
	require.NoError(t, err)

	require.Len(t, result.Zones, 1)
	zr := result.Zones[0]
	assert.Equal(t, "Raum 1", zr.Name)
	assert.InDelta(t, 2170.0, zr.Peaks[MethodHeuristic], 1e-9)

	rec := zr.Recommendations[MethodHeuristic]
	assert.InDelta(t, 2.387, rec.RequiredKW, 1e-9)
	assert.Equal(t, 2.5, rec.Primary.KWClass)
	assert.Equal(t, 2.0, rec.Alternate.KWClass)

	require.NotNil(t, zr.Selected)
	assert.Equal(t, "AR09TXFCAWKNEU", zr.Selected.ArtNr)
	assert.Equal(t, 2.5, result.InstalledKW)
	assert.Equal(t, 849.0, result.ListPriceTotal)
	assert.Equal(t, 40.0, result.TotalFloorArea)
	assert.Equal(t, SeriesWindFree, result.Series)
	assert.Equal(t, MethodHeuristic, result.SelectionMethod)
	assert.Equal(t, DefaultSafetyFactors(), result.SafetyFactors)
}

func TestCalcIsDeterministic(t *testing.T) {
	rd := referenceInput()
	rd.Zones = append(rd.Zones,
		ZoneJson{Name: "Buero", FloorArea: 25, WindowArea: 6, Orientation: "WEST", Glazing: "Einfach", Shading: "Keine", Occupants: 3, Equipment: 600},
		ZoneJson{Name: "Schlafen", FloorArea: 14, WindowArea: 2, Orientation: "OST", Occupants: 2},
	)

	a, err := Calc(rd, nil, nil)
	require.NoError(t, err)
	b, err := Calc(rd, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// ゾーンの順序は入力の順序
	assert.Equal(t, "Raum 1", a.Zones[0].Name)
	assert.Equal(t, "Buero", a.Zones[1].Name)
	assert.Equal(t, "Schlafen", a.Zones[2].Name)
}

func TestCalcDeviceOverride(t *testing.T) {
	rd := referenceInput()
	second := referenceZone()
	second.Name = "Wohnen"
	second.DeviceKW = ptr(3.5)
	third := referenceZone()
	third.Name = "Flur"
	third.DeviceKW = ptr(0)
	rd.Zones = append(rd.Zones, second, third)

	result, err := Calc(rd, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2.5, result.Zones[0].Selected.KWClass)
	assert.Equal(t, 3.5, result.Zones[1].Selected.KWClass)
	assert.Nil(t, result.Zones[2].Selected)

	// 機器を設置しないゾーンも推奨は計算される
	assert.Equal(t, 2.5, result.Zones[2].Recommendations[MethodHeuristic].Primary.KWClass)

	assert.Equal(t, 6.0, result.InstalledKW)
	assert.Equal(t, 849.0+999.0, result.ListPriceTotal)
}

func TestCalcSelectionMethodFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionMethod = MethodLegacy.String()
	cfg.SafetyFactors[MethodLegacy.String()] = 1.0

	result, err := Calc(referenceInput(), cfg, nil)
	require.NoError(t, err)

	zr := result.Zones[0]
	assert.Equal(t, MethodLegacy, result.SelectionMethod)
	assert.Equal(t, 1.0, result.SafetyFactors.Get(MethodLegacy))
	assert.InDelta(t, zr.Peaks[MethodLegacy]/1000, zr.Recommendations[MethodLegacy].RequiredKW, 1e-12)
	assert.Equal(t, zr.Recommendations[MethodLegacy].Primary, *zr.Selected)
}

func TestCalcRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(rd *InputJson, cfg *Config)
		want   error
	}{
		{"negative window area", func(rd *InputJson, _ *Config) { rd.Zones[0].WindowArea = -1 }, ErrInvalidInput},
		{"negative occupants", func(rd *InputJson, _ *Config) { rd.Zones[0].Occupants = -2 }, ErrInvalidInput},
		{"negative equipment", func(rd *InputJson, _ *Config) { rd.Zones[0].Equipment = -5 }, ErrInvalidInput},
		{"room height", func(rd *InputJson, _ *Config) { rd.Building.RoomHeight = -2 }, ErrInvalidInput},
		{"device not in series", func(rd *InputJson, _ *Config) { rd.Zones[0].DeviceKW = ptr(6.8) }, ErrInvalidInput},
		{"unknown series", func(_ *InputJson, cfg *Config) { cfg.CatalogSeries = "split_xl" }, ErrUnknownSeries},
		{"unknown method", func(_ *InputJson, cfg *Config) { cfg.SelectionMethod = "vdi" }, ErrInvalidInput},
		{"zero safety factor", func(_ *InputJson, cfg *Config) { cfg.SafetyFactors["heuristic"] = 0 }, ErrInvalidInput},
		{"NaN floor area", func(rd *InputJson, _ *Config) { rd.Zones[0].FloorArea = math.NaN() }, ErrInvalidInput},
		{"infinite floor area", func(rd *InputJson, _ *Config) { rd.Zones[0].FloorArea = math.Inf(1) }, ErrInvalidInput},
		{"infinite window area", func(rd *InputJson, _ *Config) { rd.Zones[0].WindowArea = math.Inf(1) }, ErrInvalidInput},
		{"NaN window area", func(rd *InputJson, _ *Config) { rd.Zones[0].WindowArea = math.NaN() }, ErrInvalidInput},
		{"NaN equipment", func(rd *InputJson, _ *Config) { rd.Zones[0].Equipment = math.NaN() }, ErrInvalidInput},
		{"infinite equipment", func(rd *InputJson, _ *Config) { rd.Zones[0].Equipment = math.Inf(1) }, ErrInvalidInput},
		{"infinite room height", func(rd *InputJson, _ *Config) { rd.Building.RoomHeight = math.Inf(1) }, ErrInvalidInput},
		{"NaN device", func(rd *InputJson, _ *Config) { rd.Zones[0].DeviceKW = ptr(math.NaN()) }, ErrInvalidInput},
		{"infinite safety factor", func(_ *InputJson, cfg *Config) { cfg.SafetyFactors["transient"] = math.Inf(1) }, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd := referenceInput()
			cfg := DefaultConfig()
			tt.modify(rd, cfg)

			result, err := Calc(rd, cfg, DefaultCatalog())
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, result)
		})
	}
}

func TestCalcExtendedSeriesOverride(t *testing.T) {
	rd := referenceInput()
	rd.Zones[0].DeviceKW = ptr(6.8)
	cfg := DefaultConfig()
	cfg.CatalogSeries = SeriesWindFreeExt

	result, err := Calc(rd, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "AR24TXFCAWKNEU", result.Zones[0].Selected.ArtNr)
	assert.Equal(t, 1599.0, result.ListPriceTotal)
}

func TestCalcNoZones(t *testing.T) {
	rd := referenceInput()
	rd.Zones = nil

	result, err := Calc(rd, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Zones)
	assert.Equal(t, 0.0, result.TotalFloorArea)
	assert.Equal(t, 0.0, result.InstalledKW)
	for _, m := range Methods {
		assert.Equal(t, 0.0, result.Building.Peaks[m])
	}
}

const referenceYAML = `project:
  name: Musterhaus
building:
  standard: Bestand
  mass: Mittel (Ziegel/Holz-Beton)
  room_height: 2.5
zones:
  - name: Raum 1
    floor_area: 40
    window_area: 2.4
    orientation: SUED
    glazing: Doppel
    shading: Vorhang (Innen)
    occupants: 2
    equipment: 200
  - name: Flur
    floor_area: 8
    orientation: NORD
    device_kw: 0
`

func TestReadInput(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		body, err := json.Marshal(referenceInput())
		require.NoError(t, err)
		path := filepath.Join(dir, "house.json")
		require.NoError(t, os.WriteFile(path, body, 0o644))

		rd, err := ReadInput(path)
		require.NoError(t, err)
		assert.Equal(t, referenceInput(), rd)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "house.yaml")
		require.NoError(t, os.WriteFile(path, []byte(referenceYAML), 0o644))

		rd, err := ReadInput(path)
		require.NoError(t, err)
		assert.Equal(t, "Musterhaus", rd.Project.Name)
		require.Len(t, rd.Zones, 2)
		assert.Equal(t, referenceZone(), rd.Zones[0])
		require.NotNil(t, rd.Zones[1].DeviceKW)
		assert.Equal(t, 0.0, *rd.Zones[1].DeviceKW)
	})

	t.Run("yaml non-finite numbers", func(t *testing.T) {
		path := filepath.Join(dir, "nan.yaml")
		body := "zones:\n  - floor_area: .nan\n    window_area: .inf\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		rd, err := ReadInput(path)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(rd.Zones[0].FloorArea))

		result, err := Calc(rd, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, result)
	})

	t.Run("yaml url with query", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/house.yaml" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(referenceYAML))
		}))
		defer srv.Close()

		rd, err := ReadInput(srv.URL + "/house.yaml?v=1")
		require.NoError(t, err)
		require.Len(t, rd.Zones, 2)
		assert.Equal(t, referenceZone(), rd.Zones[0])
	})

	t.Run("url not found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		_, err := ReadInput(srv.URL + "/house.json")
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"zones": [`), 0o644))

		_, err := ReadInput(path)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}

func TestRunWritesResults(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "house.yaml")
	require.NoError(t, os.WriteFile(input, []byte(referenceYAML), 0o644))
	out := filepath.Join(dir, "out")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	result, err := Run(logger, input, out, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Zones, 2)
	assert.Nil(t, result.Zones[1].Selected)

	for _, name := range []string{"result_hourly.csv", "result_peaks.csv", "transfer_report.json"} {
		info, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	body, err := os.ReadFile(filepath.Join(out, "transfer_report.json"))
	require.NoError(t, err)
	var report TransferReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, "Musterhaus", report.Meta.Project)
	assert.Equal(t, 2170, report.Zones[0].PeaksW[MethodHeuristic])
	assert.Equal(t, "AR09TXFCAWKNEU", report.Recommendations[0].ArtNr)
	assert.Empty(t, report.Recommendations[1].ArtNr)
}

func TestRunWithoutOutputDir(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "house.yaml")
	require.NoError(t, os.WriteFile(input, []byte(referenceYAML), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Run(logger, input, "", nil, nil)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
