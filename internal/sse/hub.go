// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package sse implements a broadcast hub and event formatting for
// Server-Sent Events, used to tell open pages that assets changed.
package sse

import (
	"sync"
)

// Hub fans out messages to all connected clients.
type Hub struct {
	clients map[chan string]struct{}
	mu      sync.RWMutex
	closed  bool
}

// NewHub creates a new SSE hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[chan string]struct{}),
	}
}

// Register adds a client and returns the channel to receive events on.
// After Close the returned channel is already closed.
func (h *Hub) Register() chan string {
	ch := make(chan string, 10) // buffered to prevent blocking

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch
	}
	h.clients[ch] = struct{}{}

	return ch
}

// Unregister removes the client and closes its channel.
func (h *Hub) Unregister(ch chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[ch]; !ok {
		return
	}
	delete(h.clients, ch)
	close(ch)
}

// Broadcast sends a message to all connected clients.
// Clients with a full buffer miss the message.
func (h *Hub) Broadcast(message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.clients {
		select {
		case ch <- message:
		default:
		}
	}
}

// Close disconnects all clients by closing their channels. Streams reading
// from them end, which lets the HTTP server shut down without waiting for
// open pages.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for ch := range h.clients {
		delete(h.clients, ch)
		close(ch)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
