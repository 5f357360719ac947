package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports the counters of a Manager
type Collector struct {
	entries prometheus.GaugeFunc
	hits    prometheus.CounterFunc
	misses  prometheus.CounterFunc
}

// NewCollector creates a collector for m. Metric names are prefixed with
// namespace and the "cache" subsystem.
func NewCollector(m *Manager, namespace string) *Collector {
	return &Collector{
		entries: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "entries",
				Help:      "Number of cached elements",
			},
			func() float64 { return float64(m.Len()) },
		),
		hits: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Total lookups that found an element",
			},
			func() float64 { return float64(m.hits.Load()) },
		),
		misses: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Total lookups that found nothing",
			},
			func() float64 { return float64(m.misses.Load()) },
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.entries.Describe(ch)
	c.hits.Describe(ch)
	c.misses.Describe(ch)
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.entries.Collect(ch)
	c.hits.Collect(ch)
	c.misses.Collect(ch)
}
