// Package journal exports ledger events to an append-only store in the background.
package journal

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/quorumledger/internal/model"
	"github.com/goodnatureofminers/quorumledger/pkg/batcher"
)

const (
	kindBlock    = "block"
	kindProposal = "proposal"
)

// Config controls batching of journal writes.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
	// EnqueueTimeout bounds how long a record call waits for queue space.
	EnqueueTimeout time.Duration
}

// Writer batches events and flushes them through a Repository.
type Writer struct {
	blocks    *batcher.Batcher[model.BlockEvent]
	proposals *batcher.Batcher[model.ProposalEvent]
	timeout   time.Duration
	metrics   DropMetrics
	logger    *zap.Logger
}

// NewWriter constructs a Writer. Call Start before recording and Stop on shutdown.
func NewWriter(repo Repository, cfg Config, metrics DropMetrics, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("journal")

	return &Writer{
		blocks: batcher.New(logger.With(zap.String("kind", kindBlock)), repo.InsertBlockEvents,
			cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		proposals: batcher.New(logger.With(zap.String("kind", kindProposal)), repo.InsertProposalEvents,
			cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		timeout: cfg.EnqueueTimeout,
		metrics: metrics,
		logger:  logger,
	}
}

// Start launches the flush loops.
func (w *Writer) Start(ctx context.Context) {
	w.blocks.Start(ctx)
	w.proposals.Start(ctx)
}

// Stop flushes what is queued and stops the flush loops.
func (w *Writer) Stop() {
	w.blocks.Stop()
	w.proposals.Stop()
}

// RecordBlock queues a block event. Events that cannot be queued are dropped.
func (w *Writer) RecordBlock(ctx context.Context, ev model.BlockEvent) {
	ctx, cancel := w.enqueueContext(ctx)
	defer cancel()

	if err := w.blocks.Add(ctx, ev); err != nil {
		w.dropped(kindBlock, err, zap.Int("index", ev.Index), zap.String("event", string(ev.Kind)))
	}
}

// RecordProposal queues a proposal event. Events that cannot be queued are dropped.
func (w *Writer) RecordProposal(ctx context.Context, ev model.ProposalEvent) {
	ctx, cancel := w.enqueueContext(ctx)
	defer cancel()

	if err := w.proposals.Add(ctx, ev); err != nil {
		w.dropped(kindProposal, err, zap.String("proposal_id", ev.ID))
	}
}

func (w *Writer) enqueueContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if w.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, w.timeout)
}

func (w *Writer) dropped(kind string, err error, fields ...zap.Field) {
	w.metrics.ObserveDropped(kind)
	w.logger.Warn("journal event dropped", append(fields, zap.Error(err))...)
}

// Discard is a journal that records nothing.
var Discard discard

type discard struct{}

func (discard) RecordBlock(context.Context, model.BlockEvent)       {}
func (discard) RecordProposal(context.Context, model.ProposalEvent) {}
