package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	journalRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal_repository",
		Name:      "operations_total",
		Help:      "Count of journal repository operations.",
	}, []string{"operation", "status"})
	journalRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of journal repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	journalRepositoryRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal_repository",
		Name:      "rows_total",
		Help:      "Count of rows written to the journal.",
	}, []string{"operation"})
	journalDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "dropped_events_total",
		Help:      "Count of events the journal could not queue.",
	}, []string{"kind"})
)

// JournalRepository tracks metrics for ClickHouse journal writes.
type JournalRepository struct{}

// NewJournalRepository creates a JournalRepository metrics collector.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{}
}

// Observe records duration, status and size of a repository operation.
func (m JournalRepository) Observe(operation string, rows int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	} else {
		journalRepositoryRows.WithLabelValues(operation).Add(float64(rows))
	}

	journalRepositoryRequestsTotal.WithLabelValues(operation, status).Inc()
	journalRepositoryRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// Journal tracks events the journal writer had to drop.
type Journal struct{}

// NewJournal creates a Journal metrics collector.
func NewJournal() *Journal {
	return &Journal{}
}

// ObserveDropped records an event that was not queued.
func (m Journal) ObserveDropped(kind string) {
	journalDroppedTotal.WithLabelValues(kind).Inc()
}
