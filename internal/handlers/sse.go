// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"
	"time"

	"codeberg.org/oliverandrich/subdir-assets/internal/sse"
	"github.com/labstack/echo/v4"
)

// SSEHandler streams asset change events to open pages.
type SSEHandler struct {
	hub       *sse.Hub
	heartbeat time.Duration
}

// NewSSEHandler creates a new SSE handler.
func NewSSEHandler(hub *sse.Hub) *SSEHandler {
	return &SSEHandler{
		hub:       hub,
		heartbeat: 30 * time.Second,
	}
}

// Events handles the SSE connection endpoint.
func (h *SSEHandler) Events(c echo.Context) error {
	ctx := c.Request().Context()
	w := c.Response()

	// Set SSE headers
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering
	w.WriteHeader(http.StatusOK)

	ch := h.hub.Register()
	defer h.hub.Unregister(ch)

	if _, err := w.Write([]byte(sse.ConnectedEvent())); err != nil {
		return nil //nolint:nilerr // client disconnected
	}
	w.Flush()

	// Heartbeat ticker to keep connection alive through proxies
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := w.Write([]byte(sse.Heartbeat)); err != nil {
				return nil //nolint:nilerr // client disconnected
			}
			w.Flush()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := w.Write([]byte(msg)); err != nil {
				return nil //nolint:nilerr // client disconnected
			}
			w.Flush()
		}
	}
}
