package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goodnatureofminers/quorumledger/internal/model"
	"github.com/goodnatureofminers/quorumledger/pkg/safe"
)

const insertProposalEventsQuery = `
INSERT INTO ledger_proposal_events (
	id,
	block_index,
	approvals,
	peers,
	quorum,
	approved,
	applied,
	data,
	decided_at
) VALUES`

// InsertProposalEvents stores proposal decisions. Negative indexes are stored as 0.
func (r *Repository) InsertProposalEvents(ctx context.Context, events []model.ProposalEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_proposal_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.preparer.PrepareBatch(ctx, insertProposalEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare proposal events batch: %w", err)
	}

	for _, ev := range events {
		id, err := uuid.Parse(ev.ID)
		if err != nil {
			return fmt.Errorf("proposal event id %q: %w", ev.ID, err)
		}
		index, err := safe.Uint64(max(ev.Index, 0))
		if err != nil {
			return fmt.Errorf("proposal event index: %w", err)
		}
		approvals, err := safe.Uint32(ev.Approvals)
		if err != nil {
			return fmt.Errorf("proposal event approvals: %w", err)
		}
		peers, err := safe.Uint32(ev.Peers)
		if err != nil {
			return fmt.Errorf("proposal event peers: %w", err)
		}
		if err := batch.Append(
			id,
			index,
			approvals,
			peers,
			ev.Quorum,
			ev.Approved,
			ev.Applied,
			ev.Data,
			ev.DecidedAt,
		); err != nil {
			return fmt.Errorf("append proposal event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert proposal events: %w", err)
	}
	return nil
}
