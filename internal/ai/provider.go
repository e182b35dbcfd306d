// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai talks to the upstream generative-text API. Gemini is the only
// provider; it sits behind the Generator interface so callers and tests can
// substitute their own implementation.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned by a provider constructed without a
// credential. No network call is made in that case.
var ErrMissingAPIKey = errors.New("ai: API key is not configured")

// Generator produces text for a single prompt.
type Generator interface {
	// Generate sends prompt upstream and returns the extracted text.
	// An empty string with a nil error means the upstream answered
	// successfully but carried no usable text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderConfig holds the credentials and settings for the provider.
type ProviderConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration // zero means no client-side timeout
}

// APIError describes a non-success response from the upstream API.
// Body carries the upstream payload for operator logs only.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error (status %d)", e.StatusCode)
}
