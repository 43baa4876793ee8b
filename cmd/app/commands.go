// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/oliverandrich/subdir-assets/internal/assets"
	"codeberg.org/oliverandrich/subdir-assets/internal/config"
	"codeberg.org/oliverandrich/subdir-assets/internal/server"
	"github.com/urfave/cli/v3"
)

type resolveKind int

const (
	kindAsset resolveKind = iota
	kindMix
)

var errNoPaths = errors.New("at least one path is required")

// resolveAction prints one resolved URL per argument.
func resolveAction(kind resolveKind) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		paths := cmd.Args().Slice()
		if len(paths) == 0 {
			return errNoPaths
		}

		cfg := config.NewFromCLI(cmd)
		server.SetupLogger(cfg.Log.Level, cfg.Log.Format)
		p := server.NewPrefixer(cfg, nil)

		for _, path := range paths {
			resolve := p.ResolveAsset
			if kind == kindMix {
				resolve = p.ResolveBundledAsset
			}

			url, err := resolve(path)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", path, err)
			}
			if _, err := fmt.Fprintln(cmd.Root().Writer, url); err != nil {
				return err
			}
		}
		return nil
	}
}

// manifestAction builds and writes mix-manifest.json for the public directory.
func manifestAction(_ context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	server.SetupLogger(cfg.Log.Level, cfg.Log.Format)

	var exts []string
	for _, ext := range cmd.StringSlice("ext") {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}

	// Keys must match what the helpers compute, including the base directory.
	dir := filepath.Join(cfg.Assets.PublicDir, filepath.FromSlash(cfg.Assets.ManifestDir))
	manifest, err := assets.BuildManifest(os.DirFS(dir), cfg.ManifestPrefix(), exts)
	if err != nil {
		return fmt.Errorf("failed to build manifest: %w", err)
	}

	if err := assets.WriteManifest(dir, manifest); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "wrote %d entries to %s\n", len(manifest), filepath.Join(dir, assets.ManifestFile))
	return err
}

// configAction prints the effective configuration.
func configAction(_ context.Context, cmd *cli.Command) error {
	return config.NewFromCLI(cmd).WriteTOML(cmd.Root().Writer)
}
