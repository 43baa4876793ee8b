// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"codeberg.org/oliverandrich/subdir-assets/internal/appcontext"
	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"codeberg.org/oliverandrich/subdir-assets/internal/templates"
	"github.com/labstack/echo/v4"
)

// customContext wraps the Echo context with our custom Context.
// It also stores the prefixer in the request context for template access.
func customContext(p *subdir.Prefixer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := templates.WithPrefixer(c.Request().Context(), p)
			c.SetRequest(c.Request().WithContext(ctx))

			cc := &appcontext.Context{
				Context: c,
				Assets:  p,
			}
			return next(cc)
		}
	}
}
