// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/subdir-assets/internal/appcontext"
	"codeberg.org/oliverandrich/subdir-assets/internal/config"
	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"codeberg.org/oliverandrich/subdir-assets/internal/templates"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHashedAsset(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/static/js/htmx.abc12345.js", true},
		{"/sub/css/styles.d073ff63.css", true},
		{"/js/app.dev.js", false},
		{"/js/app.js", false},
		{"/js/app.ABCDEFGH.js", false},  // uppercase not allowed
		{"/js/app.abcd123.js", false},   // wrong length
		{"/js/app.abcd12345.js", false}, // wrong length
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHashedAsset(tt.path))
		})
	}
}

func TestStaticCacheHeaders(t *testing.T) {
	e := echo.New()
	e.Use(staticCacheHeaders())
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"hashed asset gets immutable cache", "/js/app.abc12345.js", "public, max-age=31536000, immutable"},
		{"mix versioned asset gets immutable cache", "/sub/css/app.css?id=d073ff63aa01bc11", "public, max-age=31536000, immutable"},
		{"dev asset gets no-cache", "/js/app.dev.js", "no-cache, no-store, must-revalidate"},
		{"regular asset gets no cache header", "/js/app.js", ""},
		{"id query on a page is ignored", "/sub/?id=1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestCustomContext(t *testing.T) {
	p := subdir.New(subdir.Config{IsProduction: true, BaseDirectory: "/sub"}, nil, nil)

	e := echo.New()
	e.Use(customContext(p))

	var (
		fromEcho    *subdir.Prefixer
		fromRequest *subdir.Prefixer
	)
	e.GET("/", func(c echo.Context) error {
		if cc, ok := appcontext.From(c); ok {
			fromEcho = cc.Assets
		}
		fromRequest = templates.PrefixerFrom(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, p, fromEcho)
	assert.Same(t, p, fromRequest)
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "warn", "json")

		logger.Info("hidden")
		logger.Warn("shown", "path", "/sub/css/app.css")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "/sub/css/app.css", entry["path"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "debug", "text")

		logger.Debug("resolved", "url", "/css/app.css")

		assert.Contains(t, buf.String(), "resolved")
		assert.Contains(t, buf.String(), "url=/css/app.css")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("warn").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("info").String())
	assert.Equal(t, "INFO", parseLevel("bogus").String())
}

func TestSetupMiddleware_RequestID(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{MaxBodySize: 1}}
	e := New(cfg, newRegistry())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}
