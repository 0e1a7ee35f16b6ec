// Package metrics exposes archival transfer counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"cms_archiver/internal/domain"
)

// Collector records transfer outcomes. It satisfies service.TransferRecorder.
type Collector struct {
	archived           *prometheus.CounterVec
	removed            *prometheus.CounterVec
	liveDeleteFailures *prometheus.CounterVec
	notifyFailures     *prometheus.CounterVec
	writeFailures      *prometheus.CounterVec
	duration           *prometheus.HistogramVec
}

// NewCollector registers the archival metrics on reg. A nil reg gets a fresh
// registry.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		archived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_archived_total",
			Help:      "Records written to an archive store.",
		}, []string{"kind", "reason"}),
		removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_removed_total",
			Help:      "Records removed from a live store after archiving.",
		}, []string{"kind"}),
		liveDeleteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_delete_failures_total",
			Help:      "Transfers whose live delete failed after the archive write.",
		}, []string{"kind"}),
		notifyFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notify_failures_total",
			Help:      "Activity notifications that failed and were dropped.",
		}, []string{"kind"}),
		writeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_write_failures_total",
			Help:      "Transfers aborted because the archive write failed.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transfer_duration_seconds",
			Help:      "Duration of committed transfers.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"kind"}),
	}

	reg.MustRegister(
		c.archived,
		c.removed,
		c.liveDeleteFailures,
		c.notifyFailures,
		c.writeFailures,
		c.duration,
	)

	return c
}

func (c *Collector) RecordTransfer(stats *domain.TransferStats) {
	c.archived.WithLabelValues(stats.Kind, string(stats.Reason)).Add(float64(stats.Archived))
	c.removed.WithLabelValues(stats.Kind).Add(float64(stats.Removed))
	if stats.DeleteErr != nil {
		c.liveDeleteFailures.WithLabelValues(stats.Kind).Inc()
	}
	if stats.NotifyFailures > 0 {
		c.notifyFailures.WithLabelValues(stats.Kind).Add(float64(stats.NotifyFailures))
	}
	c.duration.WithLabelValues(stats.Kind).Observe(stats.Duration.Seconds())
}

func (c *Collector) RecordArchiveWriteFailure(kind string) {
	c.writeFailures.WithLabelValues(kind).Inc()
}
