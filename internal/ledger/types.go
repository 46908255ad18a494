package ledger

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// MiningMetrics records the outcome of a proof-of-work search.
	MiningMetrics interface {
		ObserveMined(attempts uint64, difficulty int, err error, started time.Time)
	}
)

type nopMiningMetrics struct{}

func (nopMiningMetrics) ObserveMined(uint64, int, error, time.Time) {}
