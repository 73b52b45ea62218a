// Package metrics exports kernel and allocator metrics to Prometheus.
//
// Metrics (namespace "aura" by default):
//   - aura_alloc_requests_total: allocation attempts by result
//   - aura_alloc_allocated_bytes: bytes currently allocated
//   - aura_alloc_capacity_bytes: allocator capacity
//   - aura_alloc_region_size_bytes: histogram of granted region sizes
//   - aura_kernel_boots_total: completed boots
//   - aura_kernel_boot_duration_seconds: boot duration histogram
//   - aura_privacy_masks_total: mask operations by level
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joshuapare/aurakernel/alloc"
)

// Config controls the collector.
type Config struct {
	Enabled   bool
	Namespace string
}

// Collector records kernel metrics into a Prometheus registry. A disabled
// collector accepts every call and records nothing.
type Collector struct {
	enabled  bool
	registry *prometheus.Registry

	allocRequests *prometheus.CounterVec
	allocated     prometheus.Gauge
	capacity      prometheus.Gauge
	regionSize    prometheus.Histogram

	boots        prometheus.Counter
	bootDuration prometheus.Histogram

	masks *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics with registry.
// If registry is nil a fresh one is created.
func NewCollector(cfg Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = "aura"
	}

	c := &Collector{
		enabled:  cfg.Enabled,
		registry: registry,

		allocRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: "alloc",
				Name:      "requests_total",
				Help:      "Total allocation attempts by result",
			},
			[]string{"result"},
		),
		allocated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "alloc",
			Name:      "allocated_bytes",
			Help:      "Bytes currently allocated",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "alloc",
			Name:      "capacity_bytes",
			Help:      "Total allocator capacity in bytes",
		}),
		regionSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "alloc",
			Name:      "region_size_bytes",
			Help:      "Size of granted regions",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8), // 64B - 1MB
		}),

		boots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "kernel",
			Name:      "boots_total",
			Help:      "Completed kernel boots",
		}),
		bootDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "kernel",
			Name:      "boot_duration_seconds",
			Help:      "Kernel boot duration",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 6),
		}),

		masks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: "privacy",
				Name:      "masks_total",
				Help:      "Mask operations by privacy level",
			},
			[]string{"level"},
		),
	}

	registry.MustRegister(
		c.allocRequests,
		c.allocated,
		c.capacity,
		c.regionSize,
		c.boots,
		c.bootDuration,
		c.masks,
	)

	return c
}

// RecordAllocation records one allocation attempt and the usage after it.
func (c *Collector) RecordAllocation(size uint64, err error, u alloc.Usage) {
	if !c.enabled {
		return
	}
	c.allocRequests.WithLabelValues(alloc.Kind(err)).Inc()
	if err == nil {
		c.regionSize.Observe(float64(size))
	}
	c.allocated.Set(float64(u.Allocated))
	c.capacity.Set(float64(u.Capacity))
}

// RecordBoot records a completed boot.
func (c *Collector) RecordBoot(d time.Duration) {
	if !c.enabled {
		return
	}
	c.boots.Inc()
	c.bootDuration.Observe(d.Seconds())
}

// RecordMask records one mask operation at level.
func (c *Collector) RecordMask(level string) {
	if !c.enabled {
		return
	}
	c.masks.WithLabelValues(level).Inc()
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler exposing the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
