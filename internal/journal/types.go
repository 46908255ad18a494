package journal

import (
	"context"

	"github.com/goodnatureofminers/quorumledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlockEvents(ctx context.Context, events []model.BlockEvent) error
		InsertProposalEvents(ctx context.Context, events []model.ProposalEvent) error
	}
	DropMetrics interface {
		ObserveDropped(kind string)
	}
)
