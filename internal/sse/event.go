// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package sse

import (
	"strings"
)

// Event names sent on the asset event stream.
const (
	EventConnected = "connected"
	EventReload    = "reload"
)

// Heartbeat is an SSE comment line. Clients ignore it; proxies see traffic.
const Heartbeat = ": heartbeat\n\n"

// ConnectedEvent is the first event of every stream.
func ConnectedEvent() string {
	return FormatEvent(EventConnected, "ok")
}

// ReloadEvent tells pages that the asset manifest at manifestPath changed
// and versioned URLs on the page are stale.
func ReloadEvent(manifestPath string) string {
	return FormatEvent(EventReload, manifestPath)
}

// FormatEvent encodes one event. Each line of data becomes its own
// "data:" field.
func FormatEvent(name, data string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString("event: ")
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	for line := range strings.SplitSeq(data, "\n") {
		sb.WriteString("data: ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	return sb.String()
}
