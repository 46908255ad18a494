package ledger

import (
	"bytes"
	"encoding/json"
)

// Block is a single entry of the chain. Data always holds canonical JSON.
type Block struct {
	Index        int             `json:"index"`
	Timestamp    string          `json:"timestamp"`
	Data         json.RawMessage `json:"data"`
	PreviousHash string          `json:"previousHash"`
	Nonce        uint64          `json:"nonce"`
	Hash         string          `json:"hash"`
}

// NewBlock builds an unmined block with nonce 0 and its digest already computed.
func NewBlock(index int, timestamp string, data any, previousHash string) (*Block, error) {
	canonical, err := CanonicalJSON(data)
	if err != nil {
		return nil, err
	}

	b := &Block{
		Index:        index,
		Timestamp:    timestamp,
		Data:         canonical,
		PreviousHash: previousHash,
	}
	b.Hash = b.RecomputeHash()
	return b, nil
}

// RecomputeHash returns the digest of the current field values without storing it.
func (b *Block) RecomputeHash() string {
	return Digest(b.Index, b.PreviousHash, b.Timestamp, b.Data, b.Nonce)
}

// MeetsDifficulty reports whether the stored hash has at least difficulty leading zeros.
func (b *Block) MeetsDifficulty(difficulty int) bool {
	return hasLeadingZeros(b.Hash, difficulty)
}

// clone returns a copy of b that does not share its data bytes.
func (b Block) clone() Block {
	b.Data = bytes.Clone(b.Data)
	return b
}
