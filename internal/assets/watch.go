// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets

import (
	"context"
	"io/fs"
	"log/slog"
	"time"
)

// Watch polls the manifest every interval. When its modification time
// changes, cached manifests are dropped and onChange is called.
// Watch blocks until ctx is done.
func (m *Mix) Watch(ctx context.Context, interval time.Duration, onChange func()) {
	last := m.manifestModTime()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := m.manifestModTime()
			if current.Equal(last) {
				continue
			}
			last = current

			m.Reload()
			slog.Info("mix manifest changed", "path", m.ManifestPath())
			if onChange != nil {
				onChange()
			}
		}
	}
}

// manifestModTime returns the zero time when the manifest is missing.
func (m *Mix) manifestModTime() time.Time {
	fi, err := fs.Stat(m.fsys, m.ManifestPath())
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}
