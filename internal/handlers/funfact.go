// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"funfact/internal/ai"
	"funfact/internal/funfact"
)

// ErrFetchFailed is the only error message callers ever see. The real
// cause goes to the log.
const ErrFetchFailed = "Failed to fetch fun fact"

// FactFetcher produces a fact for a raw, caller-supplied theme.
type FactFetcher interface {
	Fetch(ctx context.Context, rawTheme string) (funfact.Fact, error)
}

// FunFact serves GET /funfact.
type FunFact struct {
	facts FactFetcher
}

// NewFunFact creates the fact endpoint handler.
func NewFunFact(facts FactFetcher) *FunFact {
	return &FunFact{facts: facts}
}

// Get reads the optional "theme" query parameter and responds with
// {"theme","fact"}. Every failure collapses to a 500 with a fixed body.
func (h *FunFact) Get(w http.ResponseWriter, r *http.Request) {
	theme := r.URL.Query().Get("theme")

	fact, err := h.facts.Fetch(r.Context(), theme)
	if err != nil {
		logFetchError(r, err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrFetchFailed})
		return
	}

	writeJSON(w, http.StatusOK, fact)
}

// logFetchError records the cause of a failed fetch, including the
// upstream payload when the API answered with an error status.
func logFetchError(r *http.Request, err error) {
	attrs := []any{
		"error", err,
		"theme", r.URL.Query().Get("theme"),
		"request_id", r.Header.Get("X-Request-Id"),
	}

	var apiErr *ai.APIError
	switch {
	case errors.Is(err, ai.ErrMissingAPIKey):
		attrs = append(attrs, "cause", "configuration")
	case errors.As(err, &apiErr):
		attrs = append(attrs, "cause", "upstream", "upstream_status", apiErr.StatusCode, "upstream_body", apiErr.Body)
	default:
		attrs = append(attrs, "cause", "upstream")
	}

	slog.Error("error fetching fun fact", attrs...)
}
