package clickhouse

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, rows int, err error, started time.Time)
	}
	// Preparer opens insert batches.
	Preparer interface {
		PrepareBatch(ctx context.Context, query string) (RowBatch, error)
	}
	RowBatch interface {
		Append(v ...any) error
		Send() error
	}
)
