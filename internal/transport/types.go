package transport

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
	"github.com/goodnatureofminers/quorumledger/internal/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerService interface {
		AddData(ctx context.Context, data json.RawMessage) (ledger.Block, error)
		ModifyData(ctx context.Context, index int, data json.RawMessage) (consensus.Outcome, error)
		Chain() []ledger.Block
		Validate() bool
	}
	// ApprovalPolicy decides how this node votes on a peer's proposal.
	ApprovalPolicy interface {
		Approve(ctx context.Context, index int, newData json.RawMessage) (bool, string)
	}
	ChainLength interface {
		Len() int
	}
)
