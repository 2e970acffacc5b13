package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts page cache activity for one Pager. Each Pager owns its
// registry so several tables can be open in one process.
type Metrics struct {
	registry *prometheus.Registry

	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	DiskReads     prometheus.Counter
	PageFlushes   prometheus.Counter
	ResidentPages prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mydb",
			Subsystem: "pager",
			Name:      "cache_hits_total",
			Help:      "Page lookups served from memory.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mydb",
			Subsystem: "pager",
			Name:      "cache_misses_total",
			Help:      "Page lookups that allocated a new buffer.",
		}),
		DiskReads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mydb",
			Subsystem: "pager",
			Name:      "disk_reads_total",
			Help:      "Cache misses that read page bytes from the file.",
		}),
		PageFlushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mydb",
			Subsystem: "pager",
			Name:      "page_flushes_total",
			Help:      "Pages written back to the file.",
		}),
		ResidentPages: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mydb",
			Subsystem: "pager",
			Name:      "resident_pages",
			Help:      "Pages currently held in the cache.",
		}),
	}

	m.registry.MustRegister(m.CacheHits, m.CacheMisses, m.DiskReads, m.PageFlushes, m.ResidentPages)
	return m
}

func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}
