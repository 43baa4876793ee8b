// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"github.com/BurntSushi/toml"
	altsrc "github.com/urfave/cli-altsrc/v3"
	tomlsrc "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

// EnvProduction is the environment name that enables the base directory.
const EnvProduction = "production"

var configFile = altsrc.StringSourcer("config.toml")

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	App    AppConfig    `toml:"app"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Assets AssetsConfig `toml:"assets"`
}

type AppConfig struct {
	Env      string `toml:"env"`       // local, staging, production, ...
	Dir      string `toml:"dir"`       // Base directory prepended to asset paths in production
	URL      string `toml:"url"`       // Public URL of the application
	AssetURL string `toml:"asset_url"` // Root for asset URLs, defaults to URL
	MixURL   string `toml:"mix_url"`   // Prefix for manifest-resolved URLs, e.g. a CDN
}

type ServerConfig struct { //nolint:govet // fieldalignment not critical for config structs
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MaxBodySize int    `toml:"max_body_size"` // in MB
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

type AssetsConfig struct {
	PublicDir     string `toml:"public_dir"`     // Directory served as the public asset tree
	ManifestDir   string `toml:"manifest_dir"`   // Manifest location relative to PublicDir
	WatchInterval int    `toml:"watch_interval"` // Manifest poll interval in seconds, 0 disables
}

// IsProduction reports whether the application runs in production.
func (a AppConfig) IsProduction() bool {
	return a.Env == EnvProduction
}

// Prefixer returns the asset prefix configuration.
func (c *Config) Prefixer() subdir.Config {
	return subdir.Config{
		IsProduction:  c.App.IsProduction(),
		BaseDirectory: c.App.Dir,
	}
}

// MountPath returns the path below which the public directory is served.
// It is empty when assets live at the root.
func (c *Config) MountPath() string {
	if !c.App.IsProduction() {
		return ""
	}
	dir := strings.Trim(c.App.Dir, "/")
	if dir == "" {
		return ""
	}
	return "/" + dir
}

// ManifestPrefix is the prefix the asset helpers put in front of manifest
// keys: the base directory in production without its trailing slash,
// empty otherwise.
func (c *Config) ManifestPrefix() string {
	return strings.TrimSuffix(subdir.New(c.Prefixer(), nil, nil).Path(""), "/")
}

// WriteTOML writes the effective configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func NewFromCLI(cmd *cli.Command) *Config {
	cfg := &Config{
		App: AppConfig{
			Env:      cmd.String("app-env"),
			Dir:      cmd.String("app-dir"),
			URL:      cmd.String("app-url"),
			AssetURL: cmd.String("asset-url"),
			MixURL:   cmd.String("mix-url"),
		},
		Server: ServerConfig{
			Host:        cmd.String("host"),
			Port:        int(cmd.Int("port")),
			MaxBodySize: int(cmd.Int("max-body-size")),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		Assets: AssetsConfig{
			PublicDir:     cmd.String("public-dir"),
			ManifestDir:   cmd.String("manifest-dir"),
			WatchInterval: int(cmd.Int("watch-interval")),
		},
	}

	if cfg.App.URL == "" {
		cfg.App.URL = buildBaseURL(cfg)
	}
	if cfg.App.AssetURL == "" {
		cfg.App.AssetURL = cfg.App.URL
	}

	return cfg
}

func buildBaseURL(cfg *Config) string {
	host := cfg.Server.Host
	if host == "" {
		host = "localhost"
	}

	// Hide default port in URL
	if cfg.Server.Port == 80 {
		return fmt.Sprintf("http://%s", host)
	}
	return fmt.Sprintf("http://%s:%d", host, cfg.Server.Port)
}

// IsLocalhost checks if the host is a localhost address.
func IsLocalhost(host string) bool {
	switch host {
	case "", "localhost", "127.0.0.1", "::1":
		return true
	}
	// Check for *.localhost subdomains (e.g., app.localhost)
	return strings.HasSuffix(host, ".localhost")
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "app-env",
			Value:   "local",
			Usage:   "Application environment (local, staging, production)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("APP_ENV"), tomlsrc.TOML("app.env", configFile)),
		},
		&cli.StringFlag{
			Name:    "app-dir",
			Usage:   "Subdirectory prepended to asset paths in production, e.g. /app",
			Sources: cli.NewValueSourceChain(cli.EnvVar("APP_DIR"), tomlsrc.TOML("app.dir", configFile)),
		},
		&cli.StringFlag{
			Name:    "app-url",
			Usage:   "Public URL of the application (built from host and port if empty)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("APP_URL"), tomlsrc.TOML("app.url", configFile)),
		},
		&cli.StringFlag{
			Name:    "asset-url",
			Usage:   "Root URL for assets (defaults to app-url)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("ASSET_URL"), tomlsrc.TOML("app.asset_url", configFile)),
		},
		&cli.StringFlag{
			Name:    "mix-url",
			Usage:   "URL prefix for manifest-resolved assets",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MIX_URL"), tomlsrc.TOML("app.mix_url", configFile)),
		},
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind to",
			Sources: cli.NewValueSourceChain(cli.EnvVar("HOST"), tomlsrc.TOML("server.host", configFile)),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "Port to listen on",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PORT"), tomlsrc.TOML("server.port", configFile)),
		},
		&cli.IntFlag{
			Name:    "max-body-size",
			Value:   1,
			Usage:   "Maximum request body size in MB",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MAX_BODY_SIZE"), tomlsrc.TOML("server.max_body_size", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_LEVEL"), tomlsrc.TOML("log.level", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format (text, json)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_FORMAT"), tomlsrc.TOML("log.format", configFile)),
		},
		&cli.StringFlag{
			Name:    "public-dir",
			Value:   "./public",
			Usage:   "Directory containing the public asset tree",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PUBLIC_DIR"), tomlsrc.TOML("assets.public_dir", configFile)),
		},
		&cli.StringFlag{
			Name:    "manifest-dir",
			Usage:   "Directory of mix-manifest.json relative to public-dir",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MIX_MANIFEST_DIR"), tomlsrc.TOML("assets.manifest_dir", configFile)),
		},
		&cli.IntFlag{
			Name:    "watch-interval",
			Value:   2,
			Usage:   "Seconds between checks for a changed mix manifest (0 disables)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MIX_WATCH_INTERVAL"), tomlsrc.TOML("assets.watch_interval", configFile)),
		},
	}
}
