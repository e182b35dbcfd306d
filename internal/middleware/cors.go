// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"
)

// CORS applies the cross-origin allow-list. Only the listed origins get
// Access-Control-Allow-Origin, and only GET and POST are permitted.
// Requests from other origins are still served; the browser enforces the
// policy by refusing the response.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	slog.Debug("cors policy configured", "origins", allowedOrigins)
	return c.Handler
}
