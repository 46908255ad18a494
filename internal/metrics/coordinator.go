package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coordinatorProposalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "proposals_total",
		Help:      "Count of mutation proposals by outcome.",
	}, []string{"outcome"})
	coordinatorProposalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "proposal_duration_seconds",
		Help:      "Duration of a mutation proposal, fan-out and tally included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
	coordinatorApprovalRatio = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "approval_ratio",
		Help:      "Share of peers approving a proposal.",
		Buckets:   prometheus.LinearBuckets(0, 0.125, 9),
	})
	coordinatorVotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "votes_total",
		Help:      "Count of peer votes.",
	}, []string{"peer", "vote"})
)

// Coordinator tracks mutation proposals.
type Coordinator struct{}

// NewCoordinator constructs a Coordinator collector.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// ObserveVote records a single peer vote.
func (m Coordinator) ObserveVote(peer string, approved bool) {
	vote := "approve"
	if !approved {
		vote = "reject"
	}
	coordinatorVotesTotal.WithLabelValues(peer, vote).Inc()
}

// ObserveProposal records the outcome of a proposal.
func (m Coordinator) ObserveProposal(outcome string, approvals, peers int, started time.Time) {
	coordinatorProposalsTotal.WithLabelValues(outcome).Inc()
	coordinatorProposalDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
	if peers > 0 {
		coordinatorApprovalRatio.Observe(float64(approvals) / float64(peers))
	}
}
