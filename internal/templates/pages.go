// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

//go:generate templ generate

// Resolution is one row of the resolution table on the home page.
type Resolution struct {
	Kind         string // asset or mix
	Path         string
	Intermediate string
	URL          string
	Error        string
}

// PageInfo holds the data rendered by Home.
type PageInfo struct {
	Env           string
	BaseDirectory string
	Resolutions   []Resolution
	Production    bool
	// EventsURL is the manifest change stream. Pages reload on a reload
	// event when it is set.
	EventsURL string
}

// baseDirectoryLabel is what the page shows for the base directory.
func (p PageInfo) baseDirectoryLabel() string {
	if !p.Production {
		return "(not applied)"
	}
	return p.BaseDirectory
}
