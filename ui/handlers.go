package ui

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"recipelens/internal/cleaning"
	"recipelens/internal/errors"
)

func (s *Server) handleDatasetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.analysis.Dataset()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.analysis.Anomalies())
}

func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": s.analysis.ID,
		"dataset":    s.analysis.Name,
		"columns":    s.analysis.Columns(),
		"rows":       s.analysis.Table().NumRows(),
	})
}

func (s *Server) handleFacet(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "facet") {
	case "nutrition":
		out, err := s.analysis.Nutrition()
		s.writeResult(w, out, err)
	case "temporal":
		start, end := s.analysis.Window()
		var err error
		if start, end, err = parseWindow(r, start, end); err != nil {
			s.writeError(w, err)
			return
		}
		out, err := s.analysis.Temporal(start, end)
		s.writeResult(w, out, err)
	case "complexity":
		out, err := s.analysis.Complexity()
		s.writeResult(w, out, err)
	case "tags":
		out, err := s.analysis.Tags()
		s.writeResult(w, out, err)
	case "contributors":
		out, err := s.analysis.Contributors()
		s.writeResult(w, out, err)
	default:
		s.writeError(w, errors.NotFound("facet"))
	}
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	method, err := cleaning.ParseMethod(queryOrDefault(r, "method", string(cleaning.MethodStd)))
	if err != nil {
		s.writeError(w, err)
		return
	}
	threshold := cleaning.DefaultThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		threshold, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, errors.InvalidInput("threshold must be a number"))
			return
		}
	}

	if err := s.analysis.Clean(method, threshold); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"method":    string(method),
		"threshold": threshold,
		"rows":      s.analysis.Table().NumRows(),
	})
}

func parseWindow(r *http.Request, start, end time.Time) (time.Time, time.Time, error) {
	const layout = "2006-01-02"
	if raw := r.URL.Query().Get("start"); raw != "" {
		t, err := time.Parse(layout, raw)
		if err != nil {
			return start, end, errors.InvalidInput("start must be a YYYY-MM-DD date")
		}
		start = t
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, err := time.Parse(layout, raw)
		if err != nil {
			return start, end, errors.InvalidInput("end must be a YYYY-MM-DD date")
		}
		end = t
	}
	return start, end, nil
}

func queryOrDefault(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func (s *Server) writeResult(w http.ResponseWriter, payload interface{}, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response: %v", err)
	}
}

// writeError maps error codes to HTTP statuses so the dashboard can
// distinguish configuration, data, and computation failures.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeColumnMissing, errors.CodeDataMalformed:
		status = http.StatusUnprocessableEntity
	}
	s.log.Error("request failed (%s): %v", code, err)
	s.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  code,
	})
}
