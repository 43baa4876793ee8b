// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package ctxkeys defines typed context keys used across packages.
package ctxkeys

// Prefixer is the context key for the asset path prefixer.
type Prefixer struct{}
