package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/quorumledger/internal/clock"
)

// Auditor periodically verifies the chain and publishes the result.
type Auditor struct {
	chain    Chain
	metrics  AuditMetrics
	interval time.Duration
	logger   *zap.Logger

	audited bool
	valid   bool
}

// NewAuditor constructs an Auditor.
func NewAuditor(chain Chain, metrics AuditMetrics, interval time.Duration, logger *zap.Logger) (*Auditor, error) {
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if interval <= 0 {
		return nil, errors.New("audit interval must be positive")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Auditor{
		chain:    chain,
		metrics:  metrics,
		interval: interval,
		logger:   logger.Named("auditor"),
	}, nil
}

// Run audits until ctx is done.
func (a *Auditor) Run(ctx context.Context) error {
	a.logger.Info("auditor started", zap.Duration("interval", a.interval))
	err := clock.Every(ctx, a.interval, func(context.Context) {
		a.Audit()
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		a.logger.Info("auditor stopped")
		return nil
	}
	return err
}

// Audit runs one verification and reports whether the chain is valid.
func (a *Auditor) Audit() bool {
	started := time.Now()
	length := a.chain.Len()
	err := a.chain.Verify()
	valid := err == nil
	a.metrics.ObserveAudit(valid, length, started)

	switch {
	case !a.audited || valid != a.valid:
		if valid {
			a.logger.Info("chain is valid", zap.Int("length", length))
		} else {
			a.logger.Warn("chain is invalid", zap.Int("length", length), zap.Error(err))
		}
	default:
		a.logger.Debug("chain audited", zap.Bool("valid", valid), zap.Int("length", length))
	}
	a.audited = true
	a.valid = valid
	return valid
}
