package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditorChainValid = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "auditor",
		Name:      "chain_valid",
		Help:      "1 when the last audit found the chain valid, 0 otherwise.",
	})
	auditorChainLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "auditor",
		Name:      "chain_length",
		Help:      "Number of blocks seen by the last audit.",
	})
	auditorRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "auditor",
		Name:      "run_duration_seconds",
		Help:      "Duration of a full chain verification.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)

// Auditor tracks periodic chain verification.
type Auditor struct{}

// NewAuditor constructs an Auditor collector.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// ObserveAudit records the result of a verification run.
func (m Auditor) ObserveAudit(valid bool, length int, started time.Time) {
	if valid {
		auditorChainValid.Set(1)
	} else {
		auditorChainValid.Set(0)
	}
	auditorChainLength.Set(float64(length))
	auditorRunDuration.Observe(time.Since(started).Seconds())
}
