// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"codeberg.org/oliverandrich/subdir-assets/internal/config"
	"codeberg.org/oliverandrich/subdir-assets/internal/server"
	"github.com/urfave/cli/v3"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "app",
		Usage:   "Serve a web application with subdirectory-aware asset URLs",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Flags:   config.Flags(),
		Action:  server.Run,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Action: server.Run,
			},
			{
				Name:      "asset",
				Usage:     "Print the public URL of one or more assets",
				ArgsUsage: "<path>...",
				Action:    resolveAction(kindAsset),
			},
			{
				Name:      "mix",
				Usage:     "Print the versioned URL of one or more assets from the mix manifest",
				ArgsUsage: "<path>...",
				Action:    resolveAction(kindMix),
			},
			{
				Name:  "manifest",
				Usage: "Build mix-manifest.json from the public directory",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "ext",
						Usage: "Only version files with this extension (repeatable)",
					},
				},
				Action: manifestAction,
			},
			{
				Name:   "config",
				Usage:  "Print the effective configuration as TOML",
				Action: configAction,
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
