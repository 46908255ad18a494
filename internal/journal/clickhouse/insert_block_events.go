package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/quorumledger/internal/model"
	"github.com/goodnatureofminers/quorumledger/pkg/safe"
)

const insertBlockEventsQuery = `
INSERT INTO ledger_block_events (
	kind,
	block_index,
	hash,
	previous_hash,
	timestamp,
	nonce,
	difficulty,
	data,
	recorded_at
) VALUES`

// InsertBlockEvents stores mined and mutated block snapshots.
func (r *Repository) InsertBlockEvents(ctx context.Context, events []model.BlockEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.preparer.PrepareBatch(ctx, insertBlockEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare block events batch: %w", err)
	}

	for _, ev := range events {
		index, err := safe.Uint64(ev.Index)
		if err != nil {
			return fmt.Errorf("block event index: %w", err)
		}
		difficulty, err := safe.Uint32(ev.Difficulty)
		if err != nil {
			return fmt.Errorf("block event difficulty: %w", err)
		}
		if err := batch.Append(
			string(ev.Kind),
			index,
			ev.Hash,
			ev.PreviousHash,
			ev.Timestamp,
			ev.Nonce,
			difficulty,
			ev.Data,
			ev.RecordedAt,
		); err != nil {
			return fmt.Errorf("append block event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert block events: %w", err)
	}
	return nil
}
