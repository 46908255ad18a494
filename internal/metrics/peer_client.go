package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "operations_total",
		Help:      "Count of peer RPC operations.",
	}, []string{"operation", "transport", "status"})
	peerClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of peer RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "transport", "status"})
)

// PeerClient tracks metrics for calls to peer nodes.
type PeerClient struct {
	transport string
}

// NewPeerClient constructs a collector labelled with the peer transport.
func NewPeerClient(transport string) *PeerClient {
	if transport == "" {
		transport = "unknown"
	}
	return &PeerClient{transport: transport}
}

// Observe records a single peer call outcome and duration.
func (m PeerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	peerClientRequestsTotal.WithLabelValues(operation, m.transport, status).Inc()
	peerClientRequestDuration.WithLabelValues(operation, m.transport, status).Observe(time.Since(started).Seconds())
}
