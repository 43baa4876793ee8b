// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package assets resolves public asset URLs and versioned paths from the
// bundler manifest (mix-manifest.json).
package assets

import (
	"strings"
)

// URLGenerator builds public URLs for assets below a root URL.
type URLGenerator struct {
	root string
}

// NewURLGenerator creates a URLGenerator for the given root, e.g.
// "https://example.com". An empty root yields root-relative URLs.
func NewURLGenerator(root string) *URLGenerator {
	return &URLGenerator{root: strings.TrimRight(root, "/")}
}

// Root returns the root URL without trailing slash.
func (g *URLGenerator) Root() string {
	return g.root
}

// Resolve returns the public URL for path. Absolute URLs are returned as-is.
// Only leading and trailing slashes of path are trimmed.
func (g *URLGenerator) Resolve(path string) (string, error) {
	if IsURL(path) {
		return path, nil
	}
	return g.root + "/" + strings.Trim(path, "/"), nil
}

// IsURL reports whether path is already a URL that must not be rewritten.
func IsURL(path string) bool {
	for _, prefix := range []string{"#", "//", "mailto:", "tel:", "sms:"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	scheme, _, ok := strings.Cut(path, "://")
	if !ok || scheme == "" {
		return false
	}
	for _, c := range scheme {
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if !isLetter && !isDigit && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}
