package peer

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
