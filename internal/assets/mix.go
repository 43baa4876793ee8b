// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

const (
	// ManifestFile is the name of the bundler manifest.
	ManifestFile = "mix-manifest.json"
	// HotFile marks a running hot-reload dev server; it contains its URL.
	HotFile = "hot"

	defaultHotURL = "//localhost:8080"
)

var (
	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = errors.New("mix manifest not found")
	// ErrUnknownAsset is returned when the manifest has no entry for a path.
	ErrUnknownAsset = errors.New("unable to locate mix file")
)

// Manifest maps source paths to versioned paths, e.g.
// "/css/app.css" -> "/css/app.css?id=0123456789abcdef".
type Manifest map[string]string

// Mix resolves versioned asset paths from the bundler manifest.
type Mix struct {
	fsys        fs.FS
	manifests   map[string]Manifest
	manifestDir string
	mixURL      string
	mount       string
	mu          sync.Mutex
}

// MixOption configures a Mix resolver.
type MixOption func(*Mix)

// WithManifestDir sets the directory of the manifest relative to the public directory.
func WithManifestDir(dir string) MixOption {
	return func(m *Mix) {
		if dir != "" && !strings.HasPrefix(dir, "/") {
			dir = "/" + dir
		}
		m.manifestDir = dir
	}
}

// WithMixURL sets a URL prepended to every resolved path, e.g. a CDN.
func WithMixURL(url string) MixOption {
	return func(m *Mix) {
		m.mixURL = url
	}
}

// WithMount sets the path the public directory is served below. Versioned
// paths starting with it get the manifest directory inserted after it, so
// "/sub/css/app.css" in the manifest of "build" resolves to
// "/sub/build/css/app.css".
func WithMount(mount string) MixOption {
	return func(m *Mix) {
		m.mount = strings.TrimSuffix(mount, "/")
	}
}

// NewMix creates a Mix resolver reading from the public directory fsys.
func NewMix(fsys fs.FS, opts ...MixOption) *Mix {
	m := &Mix{
		fsys:      fsys,
		manifests: make(map[string]Manifest),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Resolve returns the versioned path for p.
// While a hot file exists, paths point at the dev server instead.
func (m *Mix) Resolve(p string) (string, error) {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	if hotURL, ok := m.hotURL(); ok {
		return hotURL + p, nil
	}

	manifest, err := m.manifest()
	if err != nil {
		return "", err
	}

	versioned, ok := manifest[p]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAsset, p)
	}

	if m.mount != "" && strings.HasPrefix(versioned, m.mount+"/") {
		return m.mixURL + m.mount + m.manifestDir + versioned[len(m.mount):], nil
	}
	return m.mixURL + m.manifestDir + versioned, nil
}

// ManifestPath returns the manifest location relative to the public directory.
func (m *Mix) ManifestPath() string {
	return m.fsPath(ManifestFile)
}

// Reload drops all cached manifests so the next Resolve reads them again.
func (m *Mix) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.manifests)
}

// hotURL returns the dev server URL from the hot file, if present.
func (m *Mix) hotURL() (string, bool) {
	data, err := fs.ReadFile(m.fsys, m.fsPath(HotFile))
	if err != nil {
		return "", false
	}

	url := strings.TrimRight(string(data), " \t\r\n")
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		_, after, _ := strings.Cut(url, ":")
		return after, true
	}
	return defaultHotURL, true
}

// manifest loads and caches the manifest.
func (m *Mix) manifest() (Manifest, error) {
	name := m.fsPath(ManifestFile)

	m.mu.Lock()
	defer m.mu.Unlock()

	if manifest, ok := m.manifests[name]; ok {
		return manifest, nil
	}

	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrManifestNotFound, name)
		}
		return nil, fmt.Errorf("failed to read mix manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse mix manifest: %w", err)
	}

	m.manifests[name] = manifest
	return manifest, nil
}

func (m *Mix) fsPath(name string) string {
	return path.Join(strings.Trim(m.manifestDir, "/"), name)
}
