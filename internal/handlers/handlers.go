// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"codeberg.org/oliverandrich/subdir-assets/internal/appcontext"
	"codeberg.org/oliverandrich/subdir-assets/internal/assets"
	"codeberg.org/oliverandrich/subdir-assets/internal/config"
	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"codeberg.org/oliverandrich/subdir-assets/internal/templates"
	"github.com/labstack/echo/v4"
)

// Resolver kinds accepted by the resolve endpoint.
const (
	KindAsset = "asset"
	KindMix   = "mix"
)

// homeExamples are the resolutions shown on the home page.
var homeExamples = []struct {
	kind string
	path string
}{
	{KindMix, "css/app.css"},
	{KindMix, "js/app.js"},
	{KindAsset, "img/logo.svg"},
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	cfg *config.Config
}

// New creates a new Handlers instance.
func New(cfg *config.Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// ResolveResponse is returned by the resolve endpoint.
type ResolveResponse struct {
	Kind         string `json:"kind"`
	Path         string `json:"path"`
	Intermediate string `json:"intermediate"`
	URL          string `json:"url"`
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Home renders the home page.
func (h *Handlers) Home(c echo.Context) error {
	info := templates.PageInfo{
		Env:           h.cfg.App.Env,
		BaseDirectory: h.cfg.App.Dir,
		Production:    h.cfg.App.IsProduction(),
	}
	if h.cfg.Assets.WatchInterval > 0 {
		info.EventsURL = h.cfg.MountPath() + "/_events"
	}

	if p := prefixer(c); p != nil {
		for _, ex := range homeExamples {
			url, err := resolve(p, ex.kind, ex.path)
			row := templates.Resolution{
				Kind:         ex.kind,
				Path:         ex.path,
				Intermediate: p.Path(ex.path),
				URL:          url,
			}
			if err != nil {
				row.Error = err.Error()
			}
			info.Resolutions = append(info.Resolutions, row)
		}
	}

	return Render(c, http.StatusOK, templates.Home(info))
}

// Resolve resolves ?path= with the helper named by ?kind= (asset or mix).
func (h *Handlers) Resolve(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}

	kind := c.QueryParam("kind")
	if kind == "" {
		kind = KindAsset
	}
	if kind != KindAsset && kind != KindMix {
		return echo.NewHTTPError(http.StatusBadRequest, "kind must be asset or mix")
	}

	p := prefixer(c)
	if p == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "asset resolvers not configured")
	}

	url, err := resolve(p, kind, path)
	if err != nil {
		if errors.Is(err, assets.ErrUnknownAsset) || errors.Is(err, assets.ErrManifestNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error()).SetInternal(err)
		}
		return err
	}

	return c.JSON(http.StatusOK, ResolveResponse{
		Kind:         kind,
		Path:         path,
		Intermediate: p.Path(path),
		URL:          url,
	})
}

func resolve(p *subdir.Prefixer, kind, path string) (string, error) {
	if kind == KindMix {
		return p.ResolveBundledAsset(path)
	}
	return p.ResolveAsset(path)
}

// prefixer returns the prefixer from the custom context or the request context.
func prefixer(c echo.Context) *subdir.Prefixer {
	if cc, ok := appcontext.From(c); ok {
		return cc.Assets
	}
	return templates.PrefixerFrom(c.Request().Context())
}
