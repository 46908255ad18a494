package peer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
)

// ObservedClient wraps a peer client with metrics instrumentation.
type ObservedClient struct {
	client  consensus.PeerClient
	metrics ClientMetrics
}

func NewObservedClient(client consensus.PeerClient, metrics ClientMetrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

func (o *ObservedClient) ProposeChange(ctx context.Context, peer string, p consensus.Proposal) (err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe(operationProposeChange, err, started)
	}()
	return o.client.ProposeChange(ctx, peer, p)
}
