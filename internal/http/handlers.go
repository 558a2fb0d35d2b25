package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"confronto/internal/budget/lunchmoney"
	"confronto/internal/log"
	"confronto/internal/prefs"
)

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady verifies that the preference store answers before reporting
// ready; the upstream API is deliberately not probed here to avoid burning
// rate limit on health checks.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := map[string]string{"summaries": "ok", "preferences": "ok"}

	if s.summaries == nil {
		checks["summaries"] = "failed: summary service not configured"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}
	if _, _, err := s.prefs.Get(ctx, prefs.KeyYear); err != nil {
		checks["preferences"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{"status": status, "checks": checks})
}

// handleSummary serves the full comparison summary for the requested
// option set.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parseSummaryRequest(r, time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.summaries.Summary(r.Context(), req)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Summary request failed",
			log.FieldYear, req.Year,
			log.FieldCompareYear, req.CompareYear,
			log.FieldError, err)
		if errors.Is(err, lunchmoney.ErrUnauthorized) || errors.Is(err, lunchmoney.ErrMissingToken) {
			writeError(w, http.StatusUnauthorized, "budgeting API rejected the credential")
			return
		}
		writeError(w, http.StatusBadGateway, "failed to fetch transactions")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// handleCategories serves the pre-exclusion category totals used to label
// the category filter control.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parseSummaryRequest(r, time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	totals, err := s.summaries.Categories(r.Context(), req)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Categories request failed",
			log.FieldYear, req.Year,
			log.FieldError, err)
		if errors.Is(err, lunchmoney.ErrUnauthorized) || errors.Is(err, lunchmoney.ErrMissingToken) {
			writeError(w, http.StatusUnauthorized, "budgeting API rejected the credential")
			return
		}
		writeError(w, http.StatusBadGateway, "failed to fetch transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": totals})
}

// handlePreferences serves and updates the stored preference set.
func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		all, err := s.prefs.All(r.Context())
		if err != nil {
			s.logger.ErrorContext(r.Context(), "Preference read failed", log.FieldError, err)
			writeError(w, http.StatusInternalServerError, "failed to read preferences")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"preferences": all})

	case http.MethodPut:
		var updates map[string]string
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(updates) == 0 {
			writeError(w, http.StatusBadRequest, "no preferences in body")
			return
		}
		for key := range updates {
			if !prefs.IsKnownKey(key) {
				writeError(w, http.StatusBadRequest, "unknown preference key "+key)
				return
			}
		}
		for key, value := range updates {
			if err := s.prefs.Set(r.Context(), key, sanitizeInput(value)); err != nil {
				s.logger.ErrorContext(r.Context(), "Preference write failed",
					log.FieldPrefKey, key, log.FieldError, err)
				writeError(w, http.StatusInternalServerError, "failed to store preference")
				return
			}
		}
		all, err := s.prefs.All(r.Context())
		if err != nil {
			s.logger.ErrorContext(r.Context(), "Preference read failed", log.FieldError, err)
			writeError(w, http.StatusInternalServerError, "failed to read preferences")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"preferences": all})

	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handlePreferenceKey removes a single preference by key.
func (s *Server) handlePreferenceKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/api/preferences/")
	if key == "" || strings.Contains(key, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if !prefs.IsKnownKey(key) {
		writeError(w, http.StatusBadRequest, "unknown preference key "+key)
		return
	}

	if err := s.prefs.Remove(r.Context(), key); err != nil {
		s.logger.ErrorContext(r.Context(), "Preference delete failed",
			log.FieldPrefKey, key, log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to remove preference")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
