package consensus

import (
	"context"
	"time"

	"github.com/goodnatureofminers/quorumledger/internal/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PeerClient asks a single peer to validate a proposal. A nil error is an approval.
	PeerClient interface {
		ProposeChange(ctx context.Context, peer string, p Proposal) error
	}
	Ledger interface {
		Mutate(index int, newData any) (bool, error)
		Blocks() []ledger.Block
	}
	Metrics interface {
		ObserveVote(peer string, approved bool)
		ObserveProposal(outcome string, approvals, peers int, started time.Time)
	}
)
