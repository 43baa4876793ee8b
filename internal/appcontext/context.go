// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package appcontext provides the custom Echo context.
package appcontext

import (
	"codeberg.org/oliverandrich/subdir-assets/internal/subdir"
	"github.com/labstack/echo/v4"
)

// Context is a custom Echo context with the asset prefixer attached.
type Context struct {
	echo.Context
	Assets *subdir.Prefixer
}

// From returns the custom context wrapped in c, if any.
func From(c echo.Context) (*Context, bool) {
	cc, ok := c.(*Context)
	return cc, ok && cc.Assets != nil
}
