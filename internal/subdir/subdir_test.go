// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package subdir_test

import (
	"errors"
	"sync"
	"testing"

	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a fake resolver that records every path it receives.
type recorder struct {
	err    error
	prefix string
	paths  []string
	mu     sync.Mutex
}

func (r *recorder) Resolve(path string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	if r.err != nil {
		return "", r.err
	}
	return r.prefix + path, nil
}

func newPrefixer(cfg subdir.Config) (*subdir.Prefixer, *recorder, *recorder) {
	assets := &recorder{prefix: "asset:"}
	bundled := &recorder{prefix: "mix:"}
	return subdir.New(cfg, assets, bundled), assets, bundled
}

func TestPath_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		cfg      subdir.Config
		path     string
		expected string
	}{
		{"non-production ignores base", subdir.Config{IsProduction: false, BaseDirectory: "ignored"}, "css/app.css", "/css/app.css"},
		{"production with base", subdir.Config{IsProduction: true, BaseDirectory: "/sub"}, "css/app.css", "/sub/css/app.css"},
		{"production with empty base", subdir.Config{IsProduction: true, BaseDirectory: ""}, "js/app.js", "/js/app.js"},
		{"production keeps repeated slashes", subdir.Config{IsProduction: true, BaseDirectory: "/sub/"}, "/img/logo.png", "/sub///img/logo.png"},
		{"production trailing base slash", subdir.Config{IsProduction: true, BaseDirectory: "/sub/"}, "img/logo.png", "/sub//img/logo.png"},
		{"non-production keeps leading slash of path", subdir.Config{}, "/img/logo.png", "//img/logo.png"},
		{"empty path", subdir.Config{IsProduction: true, BaseDirectory: "/sub"}, "", "/sub/"},
		{"base without leading slash", subdir.Config{IsProduction: true, BaseDirectory: "sub"}, "a.css", "sub/a.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newPrefixer(tt.cfg)
			assert.Equal(t, tt.expected, p.Path(tt.path))
		})
	}
}

func TestResolveAsset_ForwardsVerbatim(t *testing.T) {
	p, assets, bundled := newPrefixer(subdir.Config{IsProduction: true, BaseDirectory: "/sub"})

	url, err := p.ResolveAsset("css/app.css")

	require.NoError(t, err)
	assert.Equal(t, "asset:/sub/css/app.css", url)
	assert.Equal(t, []string{"/sub/css/app.css"}, assets.paths)
	assert.Empty(t, bundled.paths)
}

func TestResolveBundledAsset_ForwardsVerbatim(t *testing.T) {
	p, assets, bundled := newPrefixer(subdir.Config{IsProduction: true, BaseDirectory: "/sub/"})

	url, err := p.ResolveBundledAsset("/img/logo.png")

	require.NoError(t, err)
	assert.Equal(t, "mix:/sub///img/logo.png", url)
	assert.Equal(t, []string{"/sub///img/logo.png"}, bundled.paths)
	assert.Empty(t, assets.paths)
}

func TestResolve_NonProductionIgnoresBase(t *testing.T) {
	paths := []string{"", "a", "css/app.css", "/abs.js", "with space.png", "../up.css"}
	bases := []string{"", "/sub", "/sub/", "ignored"}

	for _, base := range bases {
		p, assets, bundled := newPrefixer(subdir.Config{IsProduction: false, BaseDirectory: base})
		for _, path := range paths {
			_, err := p.ResolveAsset(path)
			require.NoError(t, err)
			_, err = p.ResolveBundledAsset(path)
			require.NoError(t, err)
		}

		for i, path := range paths {
			assert.Equal(t, "/"+path, assets.paths[i])
			assert.Equal(t, "/"+path, bundled.paths[i])
		}
	}
}

func TestResolve_ProductionAppliesBase(t *testing.T) {
	paths := []string{"", "a", "css/app.css", "/abs.js"}
	bases := []string{"", "/sub", "/sub/", "sub"}

	for _, base := range bases {
		p, assets, bundled := newPrefixer(subdir.Config{IsProduction: true, BaseDirectory: base})
		for _, path := range paths {
			_, _ = p.ResolveAsset(path)
			_, _ = p.ResolveBundledAsset(path)
		}

		for i, path := range paths {
			assert.Equal(t, base+"/"+path, assets.paths[i])
			assert.Equal(t, base+"/"+path, bundled.paths[i])
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	p, assets, bundled := newPrefixer(subdir.Config{IsProduction: true, BaseDirectory: "/sub"})

	first, err := p.ResolveAsset("js/app.js")
	require.NoError(t, err)
	second, err := p.ResolveAsset("js/app.js")
	require.NoError(t, err)
	_, _ = p.ResolveBundledAsset("js/app.js")
	_, _ = p.ResolveBundledAsset("js/app.js")

	assert.Equal(t, first, second)
	assert.Equal(t, assets.paths[0], assets.paths[1])
	assert.Equal(t, bundled.paths[0], bundled.paths[1])
}

func TestResolve_ErrorsPassThrough(t *testing.T) {
	assetErr := errors.New("asset failure")
	mixErr := errors.New("mix failure")
	p := subdir.New(
		subdir.Config{IsProduction: true, BaseDirectory: "/sub"},
		&recorder{err: assetErr},
		&recorder{err: mixErr},
	)

	_, err := p.ResolveAsset("a.css")
	assert.Same(t, assetErr, err)

	_, err = p.ResolveBundledAsset("a.css")
	assert.Same(t, mixErr, err)
}

func TestResolverFuncs(t *testing.T) {
	p := subdir.New(
		subdir.Config{},
		subdir.AssetResolverFunc(func(path string) (string, error) {
			return "https://cdn.example.com" + path, nil
		}),
		subdir.BundledAssetResolverFunc(func(path string) (string, error) {
			return path + "?id=1", nil
		}),
	)

	url, err := p.ResolveAsset("img/logo.svg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img/logo.svg", url)

	url, err = p.ResolveBundledAsset("js/app.js")
	require.NoError(t, err)
	assert.Equal(t, "/js/app.js?id=1", url)
}

func TestConfig(t *testing.T) {
	cfg := subdir.Config{IsProduction: true, BaseDirectory: "/sub"}
	p, _, _ := newPrefixer(cfg)

	assert.Equal(t, cfg, p.Config())
}

func TestResolve_Concurrent(t *testing.T) {
	p, assets, _ := newPrefixer(subdir.Config{IsProduction: true, BaseDirectory: "/sub"})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url, err := p.ResolveAsset("css/app.css")
			assert.NoError(t, err)
			assert.Equal(t, "asset:/sub/css/app.css", url)
		}()
	}
	wg.Wait()

	assert.Len(t, assets.paths, 50)
}
