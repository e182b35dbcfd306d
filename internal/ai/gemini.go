// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiVersion = "v1"
	defaultGeminiModel   = "gemini-2.0-flash"
)

// Fixed sampling parameters sent with every request.
const (
	geminiTemperature     = 1.5
	geminiMaxOutputTokens = 100
	geminiTopP            = 1
	geminiTopK            = 1
)

// Gemini implements Generator using the Google Gemini REST API
// (POST /{version}/models/{model}:generateContent). The API key travels
// in the "key" query parameter.
type Gemini struct {
	config ProviderConfig
	client *http.Client
}

// NewGemini creates a Gemini provider. Empty fields fall back to the public
// endpoint, API version v1 and gemini-2.0-flash.
func NewGemini(cfg ProviderConfig) *Gemini {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultGeminiVersion
	}
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	return &Gemini{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Generate sends a single generateContent request. There is no retry: one
// upstream failure is one returned error.
func (p *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if p.config.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     geminiTemperature,
			MaxOutputTokens: geminiMaxOutputTokens,
			TopP:            geminiTopP,
			TopK:            geminiTopK,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini http: %w", redactKey(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("gemini unmarshal: %w", err)
	}

	return result.text(), nil
}

// endpoint builds the generateContent URL including the key parameter.
func (p *Gemini) endpoint() string {
	q := url.Values{}
	q.Set("key", p.config.APIKey)
	return fmt.Sprintf("%s/%s/models/%s:generateContent?%s",
		p.config.BaseURL, p.config.APIVersion, p.config.Model, q.Encode())
}

// redactKey strips the request URL from transport errors, since it carries
// the API key in its query string.
func redactKey(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}

// --- Gemini API types ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// text follows candidates[0].content.parts[0].text. Any missing link
// yields an empty string.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}
