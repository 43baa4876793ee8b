// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/oliverandrich/subdir-assets/internal/sse"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEHandler_Events(t *testing.T) {
	hub := sse.NewHub()
	h := NewSSEHandler(hub)

	e := echo.New()
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/_events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	done := make(chan error, 1)
	go func() {
		done <- h.Events(c)
	}()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Broadcast(sse.ReloadEvent("mix-manifest.json"))

	// Give the handler time to write the broadcast before disconnecting.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return")
	}

	assert.Equal(t, 0, hub.ClientCount())
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "event: connected\ndata: ok\n\n"), body)
	assert.Contains(t, body, "event: reload\ndata: mix-manifest.json\n\n")
}

func TestSSEHandler_Heartbeat(t *testing.T) {
	hub := sse.NewHub()
	h := &SSEHandler{hub: hub, heartbeat: 10 * time.Millisecond}

	e := echo.New()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/_events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Events(e.NewContext(req, rec)))

	assert.Contains(t, rec.Body.String(), sse.Heartbeat)
}

func TestSSEHandler_EventsEndsWhenHubCloses(t *testing.T) {
	hub := sse.NewHub()
	h := NewSSEHandler(hub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/_events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	done := make(chan error, 1)
	go func() {
		done <- h.Events(c)
	}()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Close()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("handler kept the stream open after the hub closed")
	}
}
