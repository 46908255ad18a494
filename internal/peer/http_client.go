package peer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
)

const (
	validateChangePath = "/validateChange"
	maxResponseBody    = 1 << 16
)

// HTTPClient proposes changes by POSTing to {peer}/validateChange. Only a 200
// answer counts as approval.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient builds a client whose requests are bounded by timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// NewHTTPClientWith wraps an existing http.Client.
func NewHTTPClientWith(client *http.Client) *HTTPClient {
	return &HTTPClient{client: client}
}

// ProposeChange sends p to peer and returns nil on approval.
func (c *HTTPClient) ProposeChange(ctx context.Context, peer string, p consensus.Proposal) error {
	body, err := json.Marshal(NewChangeRequest(p))
	if err != nil {
		return fmt.Errorf("marshal change request: %w", err)
	}

	url := strings.TrimRight(peer, "/") + validateChangePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", peer, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil
	}

	rejected := &RejectedError{Peer: peer, Status: resp.StatusCode}
	var answer struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&answer); err == nil {
		rejected.Reason = answer.Reason
		if rejected.Reason == "" {
			rejected.Reason = answer.Message
		}
	}
	return rejected
}
