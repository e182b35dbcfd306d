// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires the fun fact endpoint, the static frontend and the
// global middleware stack into a single Chi router.
package router

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"funfact/internal/handlers"
	"funfact/internal/middleware"
)

// New creates and returns the configured Chi router. assets is served at
// the root for any path the API does not claim.
func New(facts *handlers.FunFact, assets fs.FS, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(allowedOrigins))

	// A panic in the fact handler keeps the endpoint's error body.
	r.With(middleware.RecoverWith(handlers.ErrFetchFailed)).Get("/funfact", facts.Get)

	// Everything else is the frontend. Missing files get the file server's 404.
	files := serveIndexDirectly(http.FileServer(http.FS(assets)))
	r.Method(http.MethodGet, "/*", files)
	r.Method(http.MethodHead, "/*", files)

	return r
}

// serveIndexDirectly rewrites ".../index.html" to its directory so the file
// server returns the page instead of redirecting to "./".
func serveIndexDirectly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/index.html") {
			u := *r.URL
			u.Path = strings.TrimSuffix(u.Path, "index.html")
			u.RawPath = ""
			r2 := r.Clone(r.Context())
			r2.URL = &u
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}
