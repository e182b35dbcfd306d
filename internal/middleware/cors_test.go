// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testOrigins = []string{
	"https://funfactgenerator123.netlify.app",
	"https://funfactgenerator456.netlify.app",
	"https://cardgenerator123.netlify.app",
}

func corsHandler() http.Handler {
	return CORS(testOrigins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"theme":"random","fact":"ok fact"}`))
	}))
}

func TestCORS_AllowedOrigins(t *testing.T) {
	for _, origin := range testOrigins {
		t.Run(origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/funfact", nil)
			req.Header.Set("Origin", origin)
			rr := httptest.NewRecorder()
			corsHandler().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/funfact", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()
	corsHandler().ServeHTTP(rr, req)

	// The request is still served; only the allow header is withheld.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOrigin(t *testing.T) {
	rr := httptest.NewRecorder()
	corsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/funfact", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		method      string
		wantAllowed bool
	}{
		{name: "allowed origin GET", origin: testOrigins[0], method: http.MethodGet, wantAllowed: true},
		{name: "allowed origin POST", origin: testOrigins[2], method: http.MethodPost, wantAllowed: true},
		{name: "allowed origin DELETE", origin: testOrigins[0], method: http.MethodDelete, wantAllowed: false},
		{name: "allowed origin PUT", origin: testOrigins[1], method: http.MethodPut, wantAllowed: false},
		{name: "disallowed origin GET", origin: "https://evil.example.com", method: http.MethodGet, wantAllowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/funfact", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", tt.method)
			rr := httptest.NewRecorder()
			corsHandler().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, tt.method, rr.Header().Get("Access-Control-Allow-Methods"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
