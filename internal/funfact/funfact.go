// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package funfact turns a caller-supplied theme into a single short fact.
// It owns theme normalization, the prompt wording and the fallback rule;
// the upstream call itself is delegated to an ai.Generator.
package funfact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/samber/lo"

	"funfact/internal/ai"
)

// DefaultTheme is used when the caller does not supply one.
const DefaultTheme = "random"

// minFactLength is the trimmed length, in UTF-16 code units, a fact must
// exceed to be returned as-is. An emoji outside the BMP counts as two. Anything at or below it is replaced by the fallback message.
const minFactLength = 5

// Fact is the response shape returned to callers.
type Fact struct {
	Theme string `json:"theme"`
	Fact  string `json:"fact"`
}

// NormalizeTheme applies the default and lower-cases the result. No other
// validation is performed: any string is accepted as a theme.
func NormalizeTheme(raw string) string {
	return strings.ToLower(lo.CoalesceOrEmpty(raw, DefaultTheme))
}

// Prompt returns the instruction sent upstream for theme.
func Prompt(theme string) string {
	return fmt.Sprintf("Give me 1 short fun fact about %s. Do not include introductions or numbering.", theme)
}

// Fallback returns the message used when the upstream text is unusable.
func Fallback(theme string) string {
	return fmt.Sprintf("No fun fact found for %s. Please try again.", theme)
}

// Service fetches facts from a Generator.
type Service struct {
	gen ai.Generator
}

// NewService creates a fact service backed by gen.
func NewService(gen ai.Generator) (*Service, error) {
	if gen == nil {
		return nil, errors.New("funfact: generator is required")
	}
	return &Service{gen: gen}, nil
}

// Fetch normalizes rawTheme, asks the generator for one fact and applies
// the fallback rule. A short or empty upstream answer is not an error.
// Generator errors are returned wrapped, with the normalized theme.
func (s *Service) Fetch(ctx context.Context, rawTheme string) (Fact, error) {
	theme := NormalizeTheme(rawTheme)

	text, err := s.gen.Generate(ctx, Prompt(theme))
	if err != nil {
		return Fact{}, fmt.Errorf("fetch fun fact for %q: %w", theme, err)
	}

	text = strings.TrimSpace(text)
	slog.Info("fun fact from upstream", "theme", theme, "fact", text)

	if len(utf16.Encode([]rune(text))) <= minFactLength {
		return Fact{Theme: theme, Fact: Fallback(theme)}, nil
	}
	return Fact{Theme: theme, Fact: text}, nil
}
