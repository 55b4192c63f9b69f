package cooling_load_calc

// ***** 計算 API *****

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// 計算要求の最大サイズ, byte
const max_request_bytes = 1 << 20

type calcResponse struct {
	Report   *TransferReport    `json:"report"`
	Building MethodProfileSet   `json:"building"`
	Zones    []zoneProfilesView `json:"zones"`
}

type zoneProfilesView struct {
	Zone     string           `json:"zone"`
	Profiles MethodProfileSet `json:"profiles"`
}

// 計算方法名をキーとする時刻別冷房負荷（JSON 出力用）
type MethodProfileSet map[Method]HourlyProfile

func profile_set(mp *MethodProfiles) MethodProfileSet {
	s := make(MethodProfileSet, NumMethods)
	for _, m := range Methods {
		s[m] = mp[m]
	}
	return s
}

type server struct {
	cfg     *Config
	catalog *DeviceCatalog
	logger  *slog.Logger
}

// 計算 API のルーター
func NewRouter(cfg *Config, catalog *DeviceCatalog, logger *slog.Logger) *mux.Router {
	s := &server{cfg: cfg, catalog: catalog, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/calculate", s.handleCalculate).Methods(http.MethodPost)
	r.HandleFunc("/catalog", s.handleCatalogSeries).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{series}", s.handleCatalog).Methods(http.MethodGet)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var rd InputJson
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, max_request_bytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rd); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := Calc(&rd, s.cfg, s.catalog)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrUnknownSeries) {
			status = http.StatusUnprocessableEntity
		}
		s.logger.Warn("calculation rejected", "error", err)
		writeError(w, status, err)
		return
	}

	resp := calcResponse{
		Report:   NewTransferReport(result, rd.Project),
		Building: profile_set(&result.Building.Profiles),
		Zones:    make([]zoneProfilesView, 0, len(result.Zones)),
	}
	for i := range result.Zones {
		resp.Zones = append(resp.Zones, zoneProfilesView{
			Zone:     result.Zones[i].Name,
			Profiles: profile_set(&result.Zones[i].Profiles),
		})
	}
	s.logger.Info("calculation done", "zones", len(result.Zones), "installed_kw", result.InstalledKW)
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleCatalogSeries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.SeriesNames())
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	es, err := s.catalog.Series(mux.Vars(r)["series"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, es)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
