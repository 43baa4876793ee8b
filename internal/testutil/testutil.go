// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"codeberg.org/oliverandrich/subdir-assets/internal/assets"
	"codeberg.org/oliverandrich/subdir-assets/internal/config"
	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"github.com/labstack/echo/v4"
)

// AssetRoot is the asset URL root used by NewPrefixer.
const AssetRoot = "https://example.com"

// Manifest is a mix manifest covering the default page assets below /sub.
const Manifest = `{
    "/sub/css/app.css": "/sub/css/app.css?id=d073ff63aa01bc11",
    "/sub/js/app.js": "/sub/js/app.js?id=0011223344556677",
    "/css/app.css": "/css/app.css?id=aaaaaaaaaaaaaaaa",
    "/js/app.js": "/js/app.js?id=bbbbbbbbbbbbbbbb"
}`

// NewPublicFS creates an in-memory public directory with the given manifest.
func NewPublicFS(manifest string) fstest.MapFS {
	return fstest.MapFS{
		assets.ManifestFile: {Data: []byte(manifest)},
		"css/app.css":       {Data: []byte("body{}")},
		"js/app.js":         {Data: []byte("console.log('ok')")},
		"img/logo.svg":      {Data: []byte("<svg></svg>")},
	}
}

// NewPrefixer creates a prefixer for cfg backed by an in-memory manifest.
func NewPrefixer(t *testing.T, cfg *config.Config, manifest string) *subdir.Prefixer {
	t.Helper()
	return subdir.New(
		cfg.Prefixer(),
		assets.NewURLGenerator(AssetRoot),
		assets.NewMix(NewPublicFS(manifest)),
	)
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}
