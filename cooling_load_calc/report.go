package cooling_load_calc

// ***** 引渡し用レポート *****

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	AppName    = "coolMATH"
	AppVersion = "42.0"
)

type TransferReport struct {
	Meta            ReportMeta         `json:"meta"`
	Building        ReportBuilding     `json:"building"`
	Zones           []ReportZone       `json:"zones"`
	Recommendations []ReportDevice     `json:"recommendations"`
	SafetyFactors   map[Method]float64 `json:"safety_factors"`
}

type ReportMeta struct {
	App      string    `json:"app"`
	Version  string    `json:"version"`
	ReportID string    `json:"report_id"`
	Date     time.Time `json:"date"`
	Project  string    `json:"project"`
	Customer string    `json:"customer"`
	Engineer string    `json:"engineer"`
	Company  string    `json:"company"`
}

type ReportBuilding struct {
	PeaksW          map[Method]int     `json:"peaks_w"`          // 同時最大負荷, W
	Simultaneity    map[Method]float64 `json:"simultaneity"`     // 同時負荷率
	FloorArea       float64            `json:"floor_area"`       // m2
	InstalledKW     float64            `json:"installed_kw"`     // kW
	ListPriceTotal  float64            `json:"list_price_total"` // EUR
	Series          string             `json:"series"`
	SelectionMethod Method             `json:"selection_method"`
}

type ReportZone struct {
	Zone   string         `json:"zone"`
	PeaksW map[Method]int `json:"peaks_w"`
}

type ReportDevice struct {
	Zone           string      `json:"zone"`
	Model          string      `json:"model"`
	ArtNr          string      `json:"art_nr"`
	KWClass        float64     `json:"kw_class"`
	PriceLP        float64     `json:"price_lp"`
	RequiredKW     float64     `json:"required_kw"`
	Oversized      bool        `json:"oversized"`
	AlternateKW    float64     `json:"alternate_kw,omitempty"`     // 最終選定方法による一段小さい区分, kW
	AlternateArtNr string      `json:"alternate_art_nr,omitempty"` // 同, 品番
	Transient      ReportMatch `json:"transient"`                  // 非定常法による自動選定
}

// 計算方法ごとの自動選定結果
type ReportMatch struct {
	Model          string  `json:"model"`
	ArtNr          string  `json:"art_nr"`
	KWClass        float64 `json:"kw_class"`
	PriceLP        float64 `json:"price_lp"`
	RequiredKW     float64 `json:"required_kw"`
	Oversized      bool    `json:"oversized"`
	AlternateKW    float64 `json:"alternate_kw,omitempty"`
	AlternateArtNr string  `json:"alternate_art_nr,omitempty"`
}

func new_report_match(rec DeviceRecommendation) ReportMatch {
	m := ReportMatch{
		Model:      rec.Primary.Model,
		ArtNr:      rec.Primary.ArtNr,
		KWClass:    rec.Primary.KWClass,
		PriceLP:    rec.Primary.Price,
		RequiredKW: round_kw(rec.RequiredKW),
		Oversized:  rec.Oversized,
	}
	if rec.Alternate != nil {
		m.AlternateKW = rec.Alternate.KWClass
		m.AlternateArtNr = rec.Alternate.ArtNr
	}
	return m
}

// 小数点以下2桁に丸める, kW
func round_kw(kw float64) float64 {
	return math.Round(kw*100) / 100
}

/*
	引渡し用レポートを作成する。

	Notes:
		負荷は W 単位の整数（切り捨て）、必要能力は小数点以下2桁に丸める。
		設置なしのゾーンは機器を空欄とする。
		最終選定とは別に、非定常法による自動選定を各ゾーンに付記する。
*/
func NewTransferReport(result *Result, project ProjectJson) *TransferReport {
	return new_transfer_report(result, project, uuid.NewString(), time.Now())
}

func new_transfer_report(result *Result, project ProjectJson, id string, now time.Time) *TransferReport {
	bl := result.Building

	report := &TransferReport{
		Meta: ReportMeta{
			App:      AppName,
			Version:  AppVersion,
			ReportID: id,
			Date:     now,
			Project:  project.Name,
			Customer: project.Customer,
			Engineer: project.Engineer,
			Company:  project.Company,
		},
		Building: ReportBuilding{
			PeaksW:          make(map[Method]int, NumMethods),
			Simultaneity:    make(map[Method]float64, NumMethods),
			FloorArea:       result.TotalFloorArea,
			InstalledKW:     result.InstalledKW,
			ListPriceTotal:  result.ListPriceTotal,
			Series:          result.Series,
			SelectionMethod: result.SelectionMethod,
		},
		Zones:           make([]ReportZone, 0, len(result.Zones)),
		Recommendations: make([]ReportDevice, 0, len(result.Zones)),
		SafetyFactors:   make(map[Method]float64, NumMethods),
	}

	for _, m := range Methods {
		report.Building.PeaksW[m] = int(bl.Peaks[m])
		report.Building.Simultaneity[m] = bl.Simultaneity(m)
		report.SafetyFactors[m] = result.SafetyFactors.Get(m)
	}

	for _, zr := range result.Zones {
		z := ReportZone{Zone: zr.Name, PeaksW: make(map[Method]int, NumMethods)}
		for _, m := range Methods {
			z.PeaksW[m] = int(zr.Peaks[m])
		}
		report.Zones = append(report.Zones, z)

		rec := zr.Recommendations[result.SelectionMethod]
		d := ReportDevice{
			Zone:       zr.Name,
			RequiredKW: round_kw(rec.RequiredKW),
			Oversized:  rec.Oversized,
			Transient:  new_report_match(zr.Recommendations[MethodTransient]),
		}
		if rec.Alternate != nil {
			d.AlternateKW = rec.Alternate.KWClass
			d.AlternateArtNr = rec.Alternate.ArtNr
		}
		if zr.Selected != nil {
			d.Model = zr.Selected.Model
			d.ArtNr = zr.Selected.ArtNr
			d.KWClass = zr.Selected.KWClass
			d.PriceLP = zr.Selected.Price
		}
		report.Recommendations = append(report.Recommendations, d)
	}

	return report
}

func (r *TransferReport) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
