// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package web

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStaticFiles(t *testing.T) {
	for _, name := range []string{"static/index.html", "static/style.css", "static/script.js"} {
		_, err := fs.ReadFile(StaticFS, name)
		assert.NoError(t, err, "expected embedded asset %s", name)
	}
}

func TestAssets_Embedded(t *testing.T) {
	fsys, err := Assets("")
	require.NoError(t, err)

	b, err := fs.ReadFile(fsys, "index.html")
	require.NoError(t, err)
	assert.Contains(t, string(b), "script.js")

	b, err = fs.ReadFile(fsys, "script.js")
	require.NoError(t, err)
	assert.Contains(t, string(b), "/funfact")
}

func TestAssets_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>local</h1>"), 0o644))

	fsys, err := Assets(dir)
	require.NoError(t, err)

	b, err := fs.ReadFile(fsys, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<h1>local</h1>", string(b))
}

func TestAssets_InvalidDirectory(t *testing.T) {
	_, err := Assets(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = Assets(file)
	assert.ErrorContains(t, err, "not a directory")
}
