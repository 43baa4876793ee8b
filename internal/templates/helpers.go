// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package templates provides page components and the asset helpers they use.
package templates

import (
	"context"
	"log/slog"

	"codeberg.org/oliverandrich/subdir-assets/internal/ctxkeys"
	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
)

// WithPrefixer stores the asset prefixer in the context.
func WithPrefixer(ctx context.Context, p *subdir.Prefixer) context.Context {
	return context.WithValue(ctx, ctxkeys.Prefixer{}, p)
}

// PrefixerFrom returns the asset prefixer from the context, or nil.
func PrefixerFrom(ctx context.Context) *subdir.Prefixer {
	if p, ok := ctx.Value(ctxkeys.Prefixer{}).(*subdir.Prefixer); ok {
		return p
	}
	return nil
}

// Asset returns the public URL for path.
// On resolver errors the unresolved path is returned and the error logged.
func Asset(ctx context.Context, path string) string {
	p := PrefixerFrom(ctx)
	if p == nil {
		return "/" + path
	}

	url, err := p.ResolveAsset(path)
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve asset", "path", path, "error", err)
		return p.Path(path)
	}
	return url
}

// Mix returns the versioned URL for path from the bundler manifest.
// On resolver errors the unresolved path is returned and the error logged.
func Mix(ctx context.Context, path string) string {
	p := PrefixerFrom(ctx)
	if p == nil {
		return "/" + path
	}

	url, err := p.ResolveBundledAsset(path)
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve mix asset", "path", path, "error", err)
		return p.Path(path)
	}
	return url
}
