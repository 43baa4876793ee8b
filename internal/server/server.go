// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/oliverandrich/subdir-assets/internal/assets"
	"codeberg.org/oliverandrich/subdir-assets/internal/config"
	"codeberg.org/oliverandrich/subdir-assets/internal/handlers"
	"codeberg.org/oliverandrich/subdir-assets/internal/metrics"
	"codeberg.org/oliverandrich/subdir-assets/internal/sse"
	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	SetupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"app_url", cfg.App.URL,
		"env", cfg.App.Env,
		"app_dir", cfg.App.Dir,
	)

	if _, err := os.Stat(cfg.Assets.PublicDir); err != nil {
		slog.Warn("public directory not accessible", "dir", cfg.Assets.PublicDir, "error", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := New(cfg, reg)

	if cfg.Assets.WatchInterval > 0 {
		go s.WatchManifest(ctx, time.Duration(cfg.Assets.WatchInterval)*time.Second)
	}

	return startWithGracefulShutdown(ctx, s, cfg)
}

// Server is the Echo application together with the asset manifest and the
// hub notifying open pages about manifest changes.
type Server struct {
	*echo.Echo
	mix *assets.Mix
	hub *sse.Hub
}

// New creates the application for cfg. Metrics are registered with reg.
func New(cfg *config.Config, reg *prometheus.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	s := &Server{
		Echo: e,
		mix:  newMix(cfg),
		hub:  sse.NewHub(),
	}

	m := metrics.New(reg)
	p := newPrefixer(cfg, m, s.mix)

	setupMiddleware(e, cfg, m, p)
	setupRoutes(e, cfg, reg, s.hub)

	return s
}

// WatchManifest reloads the manifest when it changes and tells connected
// pages to reload. It blocks until ctx is done.
func (s *Server) WatchManifest(ctx context.Context, interval time.Duration) {
	s.mix.Watch(ctx, interval, func() {
		s.hub.Broadcast(sse.ReloadEvent(s.mix.ManifestPath()))
	})
}

// NewPrefixer builds the asset prefixer with the URL and manifest resolvers
// described by cfg. Resolvers are instrumented when m is not nil.
func NewPrefixer(cfg *config.Config, m *metrics.Metrics) *subdir.Prefixer {
	return newPrefixer(cfg, m, newMix(cfg))
}

func newMix(cfg *config.Config) *assets.Mix {
	return assets.NewMix(
		os.DirFS(cfg.Assets.PublicDir),
		assets.WithManifestDir(cfg.Assets.ManifestDir),
		assets.WithMixURL(cfg.App.MixURL),
		assets.WithMount(cfg.ManifestPrefix()),
	)
}

func newPrefixer(cfg *config.Config, m *metrics.Metrics, mix *assets.Mix) *subdir.Prefixer {
	var (
		assetResolver   subdir.AssetResolver        = assets.NewURLGenerator(cfg.App.AssetURL)
		bundledResolver subdir.BundledAssetResolver = mix
	)

	if m != nil {
		assetResolver = m.Instrument("asset", assetResolver)
		bundledResolver = m.Instrument("mix", bundledResolver)
	}

	return subdir.New(cfg.Prefixer(), assetResolver, bundledResolver)
}

func setupRoutes(e *echo.Echo, cfg *config.Config, gatherer prometheus.Gatherer, hub *sse.Hub) {
	h := handlers.New(cfg)
	mount := cfg.MountPath()

	// Operator routes stay at the root
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))

	// Application routes below the mount path
	e.GET(mount+"/", h.Home)
	e.GET(mount+"/_assets", h.Resolve)
	e.GET(mount+"/_events", handlers.NewSSEHandler(hub).Events)
	if mount != "" {
		e.GET(mount, func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, mount+"/")
		})
	}

	// Public directory
	e.Static(mount+"/", cfg.Assets.PublicDir)
}

func startWithGracefulShutdown(ctx context.Context, s *Server, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("Server running", "url", cfg.App.URL+cfg.MountPath()+"/")
		if err := s.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for interrupt signal, cancellation or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	// Event streams never end on their own
	s.hub.Close()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
