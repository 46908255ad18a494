// Package model holds the records the ledger node exports to its event journal.
package model

import "time"

// EventKind names what happened to a block.
type EventKind string

const (
	BlockMined   EventKind = "mined"
	BlockMutated EventKind = "mutated"
)

// BlockEvent is a snapshot of a block at the moment it was mined or mutated.
type BlockEvent struct {
	Kind         EventKind
	Index        int
	Hash         string
	PreviousHash string
	Timestamp    string
	Nonce        uint64
	Difficulty   int
	Data         string
	RecordedAt   time.Time
}

// ProposalEvent is the decision of one mutation proposal.
type ProposalEvent struct {
	ID        string
	Index     int
	Approvals int
	Peers     int
	Quorum    float64
	Approved  bool
	Applied   bool
	Data      string
	DecidedAt time.Time
}
