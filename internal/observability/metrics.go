package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles Prometheus metrics for the calculation API and provides
// helpers to wire them into HTTP handlers.
type Collector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec

	CatalogMaterials prometheus.Gauge
	CatalogBodies    prometheus.Gauge
}

// NewCollector registers the API Prometheus metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skyhook_requests_total",
		Help: "Total number of handled calculation requests, labeled by endpoint and HTTP status code.",
	}, []string{"endpoint", "code"})
	requests, err := registerCounterVec(reg, requests, "skyhook_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skyhook_request_duration_seconds",
		Help:    "Calculation request latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"endpoint"})
	durations, err = registerHistogramVec(reg, durations, "skyhook_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	catalogMaterials, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skyhook_catalog_materials",
		Help: "Current number of materials in the reference catalog.",
	}), "skyhook_catalog_materials")
	if err != nil {
		return nil, err
	}
	catalogBodies, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skyhook_catalog_bodies",
		Help: "Current number of celestial bodies in the reference catalog.",
	}), "skyhook_catalog_bodies")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		Requests:         requests,
		Durations:        durations,
		CatalogMaterials: catalogMaterials,
		CatalogBodies:    catalogBodies,
	}, nil
}

// Middleware records request counts and durations for a named endpoint.
func (c *Collector) Middleware(endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c.Requests != nil {
			c.Requests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
		}
		if c.Durations != nil {
			c.Durations.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetCatalogCounts drives the catalog gauges; the server calls it after
// seeding or extending the catalog.
func (c *Collector) SetCatalogCounts(nMaterials, nBodies int) {
	if c == nil {
		return
	}
	if c.CatalogMaterials != nil {
		c.CatalogMaterials.Set(float64(nMaterials))
	}
	if c.CatalogBodies != nil {
		c.CatalogBodies.Set(float64(nBodies))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
