// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the frontend assets (HTML, CSS, JS) served at the
// site root. The compiled files are embedded into the binary; a directory
// on disk can replace them for local frontend work.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS

// Assets returns the file tree to serve. An empty dir selects the embedded
// assets; otherwise dir must exist and be a directory.
func Assets(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(StaticFS, "static")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
