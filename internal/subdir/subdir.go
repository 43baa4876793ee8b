// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package subdir computes asset paths for applications served from a
// subdirectory and hands them to the URL and bundler manifest resolvers.
package subdir

// Config controls whether the base directory is applied.
type Config struct {
	IsProduction  bool
	BaseDirectory string
}

// AssetResolver turns a path into a public asset URL.
type AssetResolver interface {
	Resolve(path string) (string, error)
}

// BundledAssetResolver turns a path into a versioned URL using the bundler manifest.
type BundledAssetResolver interface {
	Resolve(path string) (string, error)
}

// AssetResolverFunc adapts a function to AssetResolver.
type AssetResolverFunc func(path string) (string, error)

// Resolve calls f(path).
func (f AssetResolverFunc) Resolve(path string) (string, error) {
	return f(path)
}

// BundledAssetResolverFunc adapts a function to BundledAssetResolver.
type BundledAssetResolverFunc func(path string) (string, error)

// Resolve calls f(path).
func (f BundledAssetResolverFunc) Resolve(path string) (string, error) {
	return f(path)
}

// Prefixer prefixes asset paths with the base directory in production.
// It holds no mutable state and is safe for concurrent use.
type Prefixer struct {
	assets  AssetResolver
	bundled BundledAssetResolver
	cfg     Config
}

// New creates a Prefixer.
func New(cfg Config, assets AssetResolver, bundled BundledAssetResolver) *Prefixer {
	return &Prefixer{cfg: cfg, assets: assets, bundled: bundled}
}

// Config returns the configuration the Prefixer was built with.
func (p *Prefixer) Config() Config {
	return p.cfg
}

// Path returns the path handed to the resolvers.
// Slashes are not normalized: a base of "/sub/" and a path of "/img/a.png"
// yield "/sub///img/a.png".
func (p *Prefixer) Path(path string) string {
	if p.cfg.IsProduction {
		return p.cfg.BaseDirectory + "/" + path
	}
	return "/" + path
}

// ResolveAsset resolves path through the asset URL resolver.
// Resolver errors are returned unchanged.
func (p *Prefixer) ResolveAsset(path string) (string, error) {
	return p.assets.Resolve(p.Path(path))
}

// ResolveBundledAsset resolves path through the bundler manifest resolver.
// Resolver errors are returned unchanged.
func (p *Prefixer) ResolveBundledAsset(path string) (string, error) {
	return p.bundled.Resolve(p.Path(path))
}
