// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package metrics exposes Prometheus counters for asset resolution and HTTP traffic.
package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "subdir"

// Resolver matches both asset resolver capabilities.
type Resolver interface {
	Resolve(path string) (string, error)
}

// Metrics holds the registered collectors.
type Metrics struct {
	resolutions *prometheus.CounterVec
	requests    *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_resolutions_total",
			Help:      "Total number of asset path resolutions",
		}, []string{"resolver", "outcome"}),

		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "status"}),
	}
}

// Instrument wraps r so that every call is counted under name.
// Results and errors are returned unchanged.
func (m *Metrics) Instrument(name string, r Resolver) Resolver {
	return &instrumented{name: name, next: r, metrics: m}
}

// Middleware counts handled requests by method and status.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			m.requests.WithLabelValues(c.Request().Method, strconv.Itoa(status)).Inc()
			return err
		}
	}
}

// Handler returns the exposition handler for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type instrumented struct {
	next    Resolver
	metrics *Metrics
	name    string
}

func (i *instrumented) Resolve(path string) (string, error) {
	url, err := i.next.Resolve(path)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	i.metrics.resolutions.WithLabelValues(i.name, outcome).Inc()

	return url, err
}
