// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BuildManifest walks fsys and versions every file whose extension is in exts
// (all files when exts is empty) with a content hash query string.
// Keys and values are prefix + "/" + the file's path in fsys, so prefix must
// match the base directory the helpers apply.
func BuildManifest(fsys fs.FS, prefix string, exts []string) (Manifest, error) {
	manifest := make(Manifest)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if name == ManifestFile || name == HotFile {
			return nil
		}
		if len(exts) > 0 && !slices.Contains(exts, strings.ToLower(filepath.Ext(name))) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		key := prefix + "/" + p
		manifest[key] = fmt.Sprintf("%s?id=%016x", key, xxhash.Sum64(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("built mix manifest", "entries", len(manifest))
	return manifest, nil
}

// WriteManifest writes m to dir/mix-manifest.json.
func WriteManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode mix manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // public directory
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	target := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(target, data, 0o644); err != nil { //nolint:gosec // public file
		return fmt.Errorf("failed to write mix manifest: %w", err)
	}

	slog.Info("wrote mix manifest", "path", target, "entries", len(m))
	return nil
}
