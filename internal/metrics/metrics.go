// Package metrics exposes Prometheus metrics for the toll plaza API.
package metrics

import (
	"context"
	"net/http"
	"time"

	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/toll-plaza/internal/domain"
)

// Collector owns a private registry so tests can build as many as they like.
type Collector struct {
	reg *prometheus.Registry

	Entries       *prometheus.CounterVec // kind label: new|reentry
	Exits         *prometheus.CounterVec // regime label: see domain.Fare.Regime
	UnmatchedExit prometheus.Counter
	FareTotal     prometheus.Histogram

	OperationDuration *prometheus.HistogramVec // operation label: OpenAPI operation id
}

// NewCollector registers every toll metric on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toll_entries_total",
			Help: "Entry events recorded, by whether an open trip was overwritten.",
		}, []string{"kind"}),
		Exits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toll_exits_total",
			Help: "Trips closed, by pricing regime.",
		}, []string{"regime"}),
		UnmatchedExit: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toll_exits_unmatched_total",
			Help: "Exit events with no open trip to close.",
		}),
		FareTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "toll_fare_total",
			Help:    "Total fare charged per closed trip.",
			Buckets: prometheus.LinearBuckets(10, 2.5, 12),
		}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "toll_operation_duration_seconds",
			Help:    "Handler duration per API operation.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}, []string{"operation"}),
	}

	reg.MustRegister(
		c.Entries, c.Exits, c.UnmatchedExit, c.FareTotal, c.OperationDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// EntryRecorded counts an entry event.
func (c *Collector) EntryRecorded(reentry bool) {
	kind := "new"
	if reentry {
		kind = "reentry"
	}
	c.Entries.WithLabelValues(kind).Inc()
}

// ExitRecorded counts a closed trip and observes its fare.
func (c *Collector) ExitRecorded(f domain.Fare) {
	c.Exits.WithLabelValues(f.Regime()).Inc()
	c.FareTotal.Observe(f.Total)
}

// ExitUnmatched counts an exit event that found no open trip.
func (c *Collector) ExitUnmatched() {
	c.UnmatchedExit.Inc()
}

// StrictMiddleware times every strict-server operation.
func (c *Collector) StrictMiddleware() strictnethttp.StrictHTTPMiddlewareFunc {
	return func(next strictnethttp.StrictHTTPHandlerFunc, operationID string) strictnethttp.StrictHTTPHandlerFunc {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			start := time.Now()
			resp, err := next(ctx, w, r, request)
			c.OperationDuration.WithLabelValues(operationID).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}
