package consensus

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/quorumledger/internal/ledger"
	"github.com/goodnatureofminers/quorumledger/pkg/workerpool"
)

// ErrInvalidQuorum is returned for a quorum fraction outside [0, 1].
var ErrInvalidQuorum = errors.New("consensus: quorum fraction must be within [0, 1]")

// Coordinator runs a single voting round among a static set of peers and, when the
// quorum is reached, applies the change to the local chain.
type Coordinator struct {
	ledger  Ledger
	client  PeerClient
	metrics Metrics
	logger  *zap.Logger
	newID   func() string
}

// NewCoordinator constructs a Coordinator.
func NewCoordinator(chain Ledger, client PeerClient, metrics Metrics, logger *zap.Logger) (*Coordinator, error) {
	if chain == nil {
		return nil, errors.New("ledger is required")
	}
	if client == nil {
		return nil, errors.New("peer client is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Coordinator{
		ledger:  chain,
		client:  client,
		metrics: metrics,
		logger:  logger.Named("coordinator"),
		newID:   uuid.NewString,
	}, nil
}

// ProposeMutation asks every peer to validate the change of block index to newData
// and applies it when approvals >= quorumFraction * len(peers).
//
// Peer failures of any kind count as rejections. The only returned errors are an
// invalid quorum fraction and data that cannot be serialized.
func (c *Coordinator) ProposeMutation(
	ctx context.Context,
	index int,
	newData any,
	peers []string,
	quorumFraction float64,
) (Outcome, error) {
	if math.IsNaN(quorumFraction) || quorumFraction < 0 || quorumFraction > 1 {
		return Outcome{}, fmt.Errorf("%w: %v", ErrInvalidQuorum, quorumFraction)
	}

	data, err := ledger.CanonicalJSON(newData)
	if err != nil {
		return Outcome{}, err
	}

	started := time.Now()
	proposal := Proposal{ID: c.newID(), Index: index, NewData: data}
	logger := c.logger.With(zap.String("proposal_id", proposal.ID), zap.Int("index", index))

	// The round runs to completion even if the caller goes away; each request is
	// bounded by the peer client's own timeout.
	votes := workerpool.Collect(context.WithoutCancel(ctx), len(peers), peers, func(ctx context.Context, peer string) Vote {
		return c.vote(ctx, logger, peer, proposal)
	})

	outcome := Outcome{
		ProposalID: proposal.ID,
		Index:      index,
		Data:       data,
		Peers:      len(peers),
		Votes:      votes,
	}
	for _, v := range votes {
		if v.Approved {
			outcome.Approvals++
		}
	}
	outcome.Approved = float64(outcome.Approvals) >= quorumFraction*float64(len(peers))

	if outcome.Approved {
		applied, err := c.ledger.Mutate(index, data)
		if err != nil {
			return Outcome{}, fmt.Errorf("apply proposal %s: %w", proposal.ID, err)
		}
		outcome.Applied = applied
	}
	outcome.Chain = c.ledger.Blocks()

	c.metrics.ObserveProposal(outcome.Status(), outcome.Approvals, outcome.Peers, started)
	logger.Info("proposal decided",
		zap.String("outcome", outcome.Status()),
		zap.Int("approvals", outcome.Approvals),
		zap.Int("peers", outcome.Peers),
		zap.Float64("quorum", quorumFraction),
		zap.Duration("elapsed", time.Since(started)))

	return outcome, nil
}

func (c *Coordinator) vote(ctx context.Context, logger *zap.Logger, peer string, p Proposal) Vote {
	err := c.client.ProposeChange(ctx, peer, p)
	approved := err == nil
	c.metrics.ObserveVote(peer, approved)

	if err != nil {
		logger.Warn("peer rejected proposal", zap.String("peer", peer), zap.Error(err))
	} else {
		logger.Debug("peer approved proposal", zap.String("peer", peer))
	}
	return Vote{Peer: peer, Approved: approved, Err: err}
}
