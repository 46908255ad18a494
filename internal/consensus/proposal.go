// Package consensus coordinates peer approval of changes to committed blocks.
package consensus

import (
	"encoding/json"

	"github.com/goodnatureofminers/quorumledger/internal/ledger"
)

const (
	OutcomeApplied    = "applied"
	OutcomeNotApplied = "not_applied"
	OutcomeRejected   = "rejected"
)

// Proposal is what a node sends to its peers when it wants to rewrite a block.
type Proposal struct {
	ID      string          `json:"id"`
	Index   int             `json:"index"`
	NewData json.RawMessage `json:"newData"`
}

// Vote is the answer of one peer. Err holds the transport or rejection reason.
type Vote struct {
	Peer     string
	Approved bool
	Err      error
}

// Outcome summarizes a finished proposal.
type Outcome struct {
	ProposalID string
	Index      int
	Data       json.RawMessage
	// Approved reports whether the quorum was reached.
	Approved bool
	// Applied reports whether the local chain accepted the change. An approved
	// proposal for an index outside the mutable range is not applied.
	Applied   bool
	Approvals int
	Peers     int
	Votes     []Vote
	Chain     []ledger.Block
}

// Status returns the metric label for the outcome.
func (o Outcome) Status() string {
	switch {
	case !o.Approved:
		return OutcomeRejected
	case o.Applied:
		return OutcomeApplied
	default:
		return OutcomeNotApplied
	}
}
