package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sheetsense/internal/core"
	"sheetsense/internal/store"
)

// detectRequest carries a raw grid (bounded scan window) for header detection.
type detectRequest struct {
	Grid       core.Grid `json:"grid"`
	ScanWindow int       `json:"scanWindow,omitempty"`
}

type detectResponse struct {
	HeaderRow   int      `json:"headerRow"`
	HeaderCells []string `json:"headerCells"`
}

// handleDetect runs header row detection over the posted grid.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !s.checkGrid(w, r, req.Grid) {
		return
	}

	row := core.DetectHeaderRow(req.Grid, core.DetectOptions{
		ScanWindow:    req.ScanWindow,
		MinConfidence: s.cfg.Detect.ScanConfidence,
	})

	resp := detectResponse{HeaderRow: row}
	if row < len(req.Grid) {
		resp.HeaderCells = req.Grid[row]
	}
	writeJSON(w, http.StatusOK, resp)
}

// autoMapRequest maps requested canonical field keys onto one header row.
type autoMapRequest struct {
	Fields        []string `json:"fields"`
	HeaderRow     []string `json:"headerRow"`
	StartColumn   int      `json:"startColumn,omitempty"`
	MinConfidence float64  `json:"minConfidence,omitempty"`
}

// handleAutoMap resolves requested fields against an explicit header row.
func (s *Server) handleAutoMap(w http.ResponseWriter, r *http.Request) {
	var req autoMapRequest
	if !s.decode(w, r, &req) {
		return
	}

	minConfidence := req.MinConfidence
	if minConfidence <= 0 {
		minConfidence = s.cfg.Detect.MapConfidence
	}

	result := core.AutoMapFields(req.Fields, req.HeaderRow, req.StartColumn, minConfidence)
	writeJSON(w, http.StatusOK, result)
}

// resolveRequest runs the full pass: detection, auto-mapping, and smart-name
// previews for the leading data rows. The cache round-trips untouched by the
// server; staleness is the caller's problem.
type resolveRequest struct {
	Grid   core.Grid       `json:"grid"`
	Fields []string        `json:"fields"`
	Cache  core.SheetCache `json:"cache,omitempty"`
}

type resolveResponse struct {
	HeaderRow   int                    `json:"headerRow"`
	Mapping     core.AutoMappingResult `json:"mapping"`
	Cache       core.SheetCache        `json:"cache"`
	SampleNames []string               `json:"sampleNames"`
}

// maxSampleNames bounds the smart-name preview in resolve responses.
const maxSampleNames = 5

// handleResolve runs detection plus auto-mapping in one call.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !s.checkGrid(w, r, req.Grid) {
		return
	}

	res := core.ResolveSheet(req.Grid, req.Fields, req.Cache)

	columns := res.Mapping.MappedColumns()
	samples := []string{}
	for row := res.HeaderRow + 1; row < len(req.Grid) && len(samples) < maxSampleNames; row++ {
		samples = append(samples, core.GenerateSmartName(req.Grid[row], columns))
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		HeaderRow:   res.HeaderRow,
		Mapping:     res.Mapping,
		Cache:       res.Cache,
		SampleNames: samples,
	})
}

// handleListFields returns the canonical field catalog.
func (s *Server) handleListFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, core.Fields())
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// replaceMappingsRequest is the payload for PUT mappings.
type replaceMappingsRequest struct {
	Mappings []store.SavedMapping `json:"mappings"`
}

// handleListMappings returns the persisted mappings for a sheet.
func (s *Server) handleListMappings(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetID")

	mappings, err := s.mappings.List(r.Context(), sheetID)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if mappings == nil {
		mappings = []store.SavedMapping{}
	}
	writeJSON(w, http.StatusOK, mappings)
}

// handleReplaceMappings swaps the full mapping set for a sheet.
func (s *Server) handleReplaceMappings(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetID")

	var req replaceMappingsRequest
	if !s.decode(w, r, &req) {
		return
	}

	seen := make(map[string]bool, len(req.Mappings))
	for _, m := range req.Mappings {
		if core.ColumnIndex(m.ColumnLetter) < 0 {
			s.respondBadRequest(w, r, "invalid column letter: "+m.ColumnLetter)
			return
		}
		if seen[m.ColumnLetter] {
			s.respondBadRequest(w, r, "duplicate column letter: "+m.ColumnLetter)
			return
		}
		seen[m.ColumnLetter] = true
		if _, ok := core.FieldByKey(m.FieldKey); !ok {
			s.respondBadRequest(w, r, "unknown field key: "+m.FieldKey)
			return
		}
	}

	if err := s.mappings.Replace(r.Context(), sheetID, req.Mappings); err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"saved": len(req.Mappings)})
}

// handleDeleteMappings removes all persisted mappings for a sheet.
func (s *Server) handleDeleteMappings(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetID")

	deleted, err := s.mappings.Delete(r.Context(), sheetID)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// decode reads a JSON body, enforcing the configured size cap. Returns false
// after writing the error response when decoding fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return false
	}
	return true
}

// checkGrid rejects grids exceeding the configured row cap. The core handles
// empty grids itself, so only the upper bound is enforced here.
func (s *Server) checkGrid(w http.ResponseWriter, r *http.Request, grid core.Grid) bool {
	if len(grid) > s.cfg.Detect.MaxGridRows {
		s.respondBadRequest(w, r, "grid exceeds maximum row count")
		return false
	}
	return true
}
