// Package metrics exposes Prometheus counters for the HTTP surface
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewCollector creates a collector with its own registry so tests can spin
// up routers without duplicate-registration panics
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "twitchplanner_http_requests_total",
			Help: "Requests served, by method, route and status code",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "twitchplanner_http_request_duration_seconds",
			Help:    "Request handling latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requests, c.latency)

	return c
}

// Middleware records every handled request. The route label uses the gin
// template path so IDs don't explode the cardinality
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(g *gin.Context) {
		start := time.Now()
		g.Next()

		route := g.FullPath()
		if route == "" {
			route = "unmatched"
		}

		c.requests.WithLabelValues(
			g.Request.Method,
			route,
			strconv.Itoa(g.Writer.Status()),
		).Inc()
		c.latency.Observe(time.Since(start).Seconds())
	}
}

// Handler serves the scrape endpoint
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
