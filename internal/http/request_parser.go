package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"confronto/internal/services"
)

// parseSummaryRequest extracts the comparison options from query parameters.
// Missing year defaults to the current year, missing compare to the year
// before it; a value that is present but not an integer is a client error.
func parseSummaryRequest(r *http.Request, now time.Time) (services.SummaryRequest, error) {
	req := services.SummaryRequest{Year: now.Year()}

	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("year")); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid year %q", v)
		}
		req.Year = y
	}

	req.CompareYear = req.Year - 1
	if v := strings.TrimSpace(q.Get("compare")); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid compare year %q", v)
		}
		req.CompareYear = y
	}

	if v := strings.TrimSpace(q.Get("month")); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid month %q", v)
		}
		req.Month = m
	}

	req.Excluded = parseExcluded(q.Get("exclude"))
	return req, nil
}

// parseExcluded splits a comma-separated category list, dropping empties.
func parseExcluded(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
