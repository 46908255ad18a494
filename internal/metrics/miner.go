// Package metrics exposes Prometheus collectors for the ledger node.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quorumledger"

var (
	minerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "blocks_total",
		Help:      "Count of proof-of-work searches.",
	}, []string{"difficulty", "status"})
	minerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "attempts_total",
		Help:      "Count of nonces tried while mining.",
	}, []string{"difficulty"})
	minerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "duration_seconds",
		Help:      "Duration of proof-of-work searches.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 10, 30, 60},
	}, []string{"difficulty", "status"})
)

// Miner tracks proof-of-work searches.
type Miner struct{}

// NewMiner constructs a Miner collector.
func NewMiner() *Miner {
	return &Miner{}
}

// ObserveMined records a finished or canceled search.
func (m Miner) ObserveMined(attempts uint64, difficulty int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "canceled"
	}
	d := strconv.Itoa(difficulty)

	minerBlocksTotal.WithLabelValues(d, status).Inc()
	minerAttemptsTotal.WithLabelValues(d).Add(float64(attempts))
	minerDuration.WithLabelValues(d, status).Observe(time.Since(started).Seconds())
}
