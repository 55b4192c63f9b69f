package cooling_load_calc

import (
	"io"

	"github.com/gocarina/gocsv"
)

// 建物全体の行に用いるゾーン名
const building_zone_name = "GEBAEUDE SIMULTAN"

// 時刻別の計算結果の1行
type hourly_row struct {
	Zone   string  `csv:"zone"`
	Method string  `csv:"method"`
	Hour   int     `csv:"hour"`
	LoadW  float64 `csv:"load_w"`
}

// 最大負荷と機器選定の1行
type peak_row struct {
	Zone        string  `csv:"zone"`
	Method      string  `csv:"method"`
	PeakW       float64 `csv:"peak_w"`
	PeakHour    int     `csv:"peak_hour"`
	RequiredKW  float64 `csv:"required_kw"`
	KWClass     float64 `csv:"kw_class"`
	ArtNr       string  `csv:"art_nr"`
	AlternateKW float64 `csv:"alternate_kw"`
	Oversized   bool    `csv:"oversized"`
}

type Recorder struct {
	_name_is   []string         // ゾーン i の名前, [I]
	q_is_ms_hs []MethodProfiles // ゾーン i の計算方法 m の時刻 h における冷房負荷, W, [i, m, 24]
	q_ms_hs    MethodProfiles   // 計算方法 m の時刻 h における建物全体の冷房負荷, W, [m, 24]
	rec_is_ms  [][NumMethods]DeviceRecommendation
	result     *Result
}

func NewRecorder(result *Result) *Recorder {
	var r Recorder

	n_zone := len(result.Zones)
	r._name_is = make([]string, n_zone)
	r.q_is_ms_hs = make([]MethodProfiles, n_zone)
	r.rec_is_ms = make([][NumMethods]DeviceRecommendation, n_zone)
	for i, zr := range result.Zones {
		r._name_is[i] = zr.Name
		r.q_is_ms_hs[i] = zr.Profiles
		r.rec_is_ms[i] = zr.Recommendations
	}
	r.q_ms_hs = result.Building.Profiles
	r.result = result

	return &r
}

/*
	時刻別の計算結果を CSV で出力する。

	Notes:
		ゾーン別の行の後に建物全体の行を出力する。
*/
func (r *Recorder) export_hourly(w io.Writer) error {
	rows := make([]hourly_row, 0, (len(r._name_is)+1)*NumMethods*Hours)
	for i, name := range r._name_is {
		rows = append_hourly_rows(rows, name, &r.q_is_ms_hs[i])
	}
	rows = append_hourly_rows(rows, building_zone_name, &r.q_ms_hs)
	return gocsv.Marshal(&rows, w)
}

func append_hourly_rows(rows []hourly_row, name string, q_ms_hs *MethodProfiles) []hourly_row {
	for _, m := range Methods {
		for h := 0; h < Hours; h++ {
			rows = append(rows, hourly_row{
				Zone:   name,
				Method: m.String(),
				Hour:   h,
				LoadW:  q_ms_hs[m][h],
			})
		}
	}
	return rows
}

// 最大負荷と機器選定結果を CSV で出力する。
func (r *Recorder) export_peaks(w io.Writer) error {
	rows := make([]peak_row, 0, (len(r._name_is)+1)*NumMethods)
	for i, name := range r._name_is {
		for _, m := range Methods {
			rec := r.rec_is_ms[i][m]
			row := peak_row{
				Zone:       name,
				Method:     m.String(),
				PeakW:      rec.PeakW,
				PeakHour:   r.q_is_ms_hs[i][m].PeakHour(),
				RequiredKW: rec.RequiredKW,
				KWClass:    rec.Primary.KWClass,
				ArtNr:      rec.Primary.ArtNr,
				Oversized:  rec.Oversized,
			}
			if rec.Alternate != nil {
				row.AlternateKW = rec.Alternate.KWClass
			}
			rows = append(rows, row)
		}
	}
	bl := r.result.Building
	for _, m := range Methods {
		rows = append(rows, peak_row{
			Zone:     building_zone_name,
			Method:   m.String(),
			PeakW:    bl.Peaks[m],
			PeakHour: bl.PeakHours[m],
		})
	}
	return gocsv.Marshal(&rows, w)
}
