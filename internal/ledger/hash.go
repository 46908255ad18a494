// Package ledger implements the hash-chained block store: digest computation,
// proof-of-work admission and full-chain validation.
package ledger

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrSerialization is returned when a payload cannot be canonically serialized.
var ErrSerialization = errors.New("ledger: payload is not serializable")

// CanonicalJSON serializes v so that logically identical payloads produce identical
// bytes: object keys are sorted, numbers keep their literal form and insignificant
// whitespace is dropped.
func CanonicalJSON(v any) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrSerialization, err)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrSerialization, err)
	}
	return out, nil
}

// Digest returns the hex encoded SHA-256 of the block fields concatenated in the
// order index, previous hash, timestamp, data, nonce.
func Digest(index int, previousHash, timestamp string, data json.RawMessage, nonce uint64) string {
	buf := make([]byte, 0, 20+len(previousHash)+len(timestamp)+len(data)+20)
	buf = strconv.AppendInt(buf, int64(index), 10)
	buf = append(buf, previousHash...)
	buf = append(buf, timestamp...)
	buf = append(buf, data...)
	buf = strconv.AppendUint(buf, nonce, 10)

	return hex.EncodeToString(chainhash.HashB(buf))
}

// hasLeadingZeros reports whether hash starts with n '0' characters.
func hasLeadingZeros(hash string, n int) bool {
	if n > len(hash) {
		return false
	}
	for i := 0; i < n; i++ {
		if hash[i] != '0' {
			return false
		}
	}
	return true
}
