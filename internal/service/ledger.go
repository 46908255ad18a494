// Package service glues the chain, the coordinator and the event journal together.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
	"github.com/goodnatureofminers/quorumledger/internal/ledger"
	"github.com/goodnatureofminers/quorumledger/internal/model"
)

// LedgerConfig holds the static peer set and the quorum used for mutations.
type LedgerConfig struct {
	Peers  []string
	Quorum float64
}

// LedgerService serves the node's public operations.
type LedgerService struct {
	chain       Chain
	coordinator Coordinator
	journal     Journal
	peers       []string
	quorum      float64
	now         func() time.Time
	logger      *zap.Logger
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(chain Chain, coordinator Coordinator, journal Journal, cfg LedgerConfig, logger *zap.Logger) (*LedgerService, error) {
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if coordinator == nil {
		return nil, errors.New("coordinator is required")
	}
	if journal == nil {
		return nil, errors.New("journal is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	peers := make([]string, len(cfg.Peers))
	copy(peers, cfg.Peers)

	return &LedgerService{
		chain:       chain,
		coordinator: coordinator,
		journal:     journal,
		peers:       peers,
		quorum:      cfg.Quorum,
		now:         time.Now,
		logger:      logger.Named("ledger_service"),
	}, nil
}

// AddData mines a block carrying data on top of the chain.
func (s *LedgerService) AddData(ctx context.Context, data json.RawMessage) (ledger.Block, error) {
	timestamp := s.now().UTC().Format(time.RFC3339Nano)
	block, err := s.chain.AppendData(ctx, timestamp, data)
	if err != nil {
		return ledger.Block{}, err
	}

	s.journal.RecordBlock(ctx, s.blockEvent(model.BlockMined, block))
	return block, nil
}

// ModifyData asks the configured peers to approve replacing the data of block
// index and applies it on approval.
func (s *LedgerService) ModifyData(ctx context.Context, index int, data json.RawMessage) (consensus.Outcome, error) {
	outcome, err := s.coordinator.ProposeMutation(ctx, index, data, s.peers, s.quorum)
	if err != nil {
		return consensus.Outcome{}, err
	}

	s.journal.RecordProposal(ctx, model.ProposalEvent{
		ID:        outcome.ProposalID,
		Index:     index,
		Approvals: outcome.Approvals,
		Peers:     outcome.Peers,
		Quorum:    s.quorum,
		Approved:  outcome.Approved,
		Applied:   outcome.Applied,
		Data:      string(outcome.Data),
		DecidedAt: s.now().UTC(),
	})
	if outcome.Applied && index < len(outcome.Chain) {
		s.journal.RecordBlock(ctx, s.blockEvent(model.BlockMutated, outcome.Chain[index]))
	}
	return outcome, nil
}

// Chain returns a snapshot of every block.
func (s *LedgerService) Chain() []ledger.Block {
	return s.chain.Blocks()
}

// Validate reports whether the chain verifies.
func (s *LedgerService) Validate() bool {
	if err := s.chain.Verify(); err != nil {
		s.logger.Info("chain is invalid", zap.Error(err))
		return false
	}
	return true
}

func (s *LedgerService) blockEvent(kind model.EventKind, b ledger.Block) model.BlockEvent {
	return model.BlockEvent{
		Kind:         kind,
		Index:        b.Index,
		Hash:         b.Hash,
		PreviousHash: b.PreviousHash,
		Timestamp:    b.Timestamp,
		Nonce:        b.Nonce,
		Difficulty:   s.chain.Difficulty(),
		Data:         string(b.Data),
		RecordedAt:   s.now().UTC(),
	}
}
