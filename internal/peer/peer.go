// Package peer carries mutation proposals between ledger nodes over HTTP or gRPC.
package peer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
)

const operationProposeChange = "propose_change"

// ErrUnsupportedScheme is returned for a peer address neither transport can reach.
var ErrUnsupportedScheme = errors.New("peer: unsupported address scheme")

// ChangeRequest is the body a node sends to a peer's validateChange endpoint.
type ChangeRequest struct {
	ProposalID string          `json:"proposalId,omitempty"`
	Index      int             `json:"index"`
	NewData    json.RawMessage `json:"newData"`
}

// ChangeResponse is a peer's answer.
type ChangeResponse struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

// RejectedError is returned when a peer answered but did not approve.
type RejectedError struct {
	Peer   string
	Status int
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("peer %s rejected change (status %d)", e.Peer, e.Status)
	}
	return fmt.Sprintf("peer %s rejected change (status %d): %s", e.Peer, e.Status, e.Reason)
}

// NewChangeRequest converts a proposal into its wire form.
func NewChangeRequest(p consensus.Proposal) ChangeRequest {
	return ChangeRequest{
		ProposalID: p.ID,
		Index:      p.Index,
		NewData:    p.NewData,
	}
}
