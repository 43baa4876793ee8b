// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"codeberg.org/oliverandrich/subdir-assets/internal/templates"
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render renders a templ component with the given status code. The request's
// asset prefixer is available to the component's asset helpers.
func Render(c echo.Context, statusCode int, component templ.Component) error {
	ctx := c.Request().Context()
	if p := prefixer(c); p != nil {
		ctx = templates.WithPrefixer(ctx, p)
	}

	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := component.Render(ctx, buf); err != nil {
		return err
	}

	return c.HTML(statusCode, buf.String())
}
