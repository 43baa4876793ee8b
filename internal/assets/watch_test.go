// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/oliverandrich/subdir-assets/internal/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMix_Watch(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, assets.ManifestFile)
	require.NoError(t, os.WriteFile(manifestPath, []byte(`{"/a.css": "/a.css?id=1"}`), 0o600))

	mix := assets.NewMix(os.DirFS(dir))
	url, err := mix.Resolve("/a.css")
	require.NoError(t, err)
	require.Equal(t, "/a.css?id=1", url)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		mix.Watch(ctx, 10*time.Millisecond, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Let the watcher record the initial modification time.
	time.Sleep(30 * time.Millisecond)

	require.NoError(t, os.WriteFile(manifestPath, []byte(`{"/a.css": "/a.css?id=2"}`), 0o600))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(manifestPath, later, later))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	url, err = mix.Resolve("/a.css")
	require.NoError(t, err)
	assert.Equal(t, "/a.css?id=2", url)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
