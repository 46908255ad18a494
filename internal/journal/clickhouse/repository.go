// Package clickhouse writes ledger events to ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type Repository struct {
	conn     clickhouse.Conn
	preparer Preparer
	metrics  Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, preparer: connPreparer{conn: conn}, metrics: metrics}, nil
}

// Ping checks the connection.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

type connPreparer struct {
	conn clickhouse.Conn
}

func (p connPreparer) PrepareBatch(ctx context.Context, query string) (RowBatch, error) {
	return p.conn.PrepareBatch(ctx, query)
}
