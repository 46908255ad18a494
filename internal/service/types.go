package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
	"github.com/goodnatureofminers/quorumledger/internal/ledger"
	"github.com/goodnatureofminers/quorumledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		AppendData(ctx context.Context, timestamp string, data any) (ledger.Block, error)
		Blocks() []ledger.Block
		Verify() error
		Len() int
		Difficulty() int
	}
	Coordinator interface {
		ProposeMutation(ctx context.Context, index int, newData any, peers []string, quorumFraction float64) (consensus.Outcome, error)
	}
	Journal interface {
		RecordBlock(ctx context.Context, ev model.BlockEvent)
		RecordProposal(ctx context.Context, ev model.ProposalEvent)
	}
	AuditMetrics interface {
		ObserveAudit(valid bool, length int, started time.Time)
	}
)
