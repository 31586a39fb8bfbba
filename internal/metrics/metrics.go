// Package metrics exposes Prometheus counters for the HTTP API and AI calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeGenerated = "generated"
	OutcomeEmpty     = "empty"
	OutcomeError     = "error"
)

// Collector owns its registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Generations counts AI requests by kind (role, job, cover_letter) and outcome.
	Generations *prometheus.CounterVec
	// EmailsSynced counts HR responses stored by the Gmail watcher.
	EmailsSynced prometheus.Counter
}

func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ai_generations_total",
				Help:      "Total number of AI generation requests",
			},
			[]string{"kind", "outcome"},
		),
		EmailsSynced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "hr_responses_synced_total",
				Help:      "Total number of HR responses stored from Gmail",
			},
		),
	}

	registry.MustRegister(c.HTTPRequests, c.HTTPDuration, c.Generations, c.EmailsSynced)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordGeneration is safe on a nil collector.
func (c *Collector) RecordGeneration(kind, outcome string) {
	if c == nil {
		return
	}
	c.Generations.WithLabelValues(kind, outcome).Inc()
}

func (c *Collector) RecordEmailSynced() {
	if c == nil {
		return
	}
	c.EmailsSynced.Inc()
}

// Middleware records every request under its route template.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
