package peer

import (
	"context"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"
	schemeGRPC  = "grpc"
)

// Router dispatches a proposal to the transport matching the peer address scheme.
type Router struct {
	http consensus.PeerClient
	grpc consensus.PeerClient
}

// NewRouter constructs a Router. A nil transport makes its scheme unsupported.
func NewRouter(httpClient, grpcClient consensus.PeerClient) *Router {
	return &Router{http: httpClient, grpc: grpcClient}
}

// ProposeChange implements consensus.PeerClient.
func (r *Router) ProposeChange(ctx context.Context, peer string, p consensus.Proposal) error {
	client := r.route(peer)
	if client == nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, peer)
	}
	return client.ProposeChange(ctx, peer, p)
}

func (r *Router) route(peer string) consensus.PeerClient {
	scheme, _, found := strings.Cut(peer, "://")
	if !found {
		return nil
	}
	switch strings.ToLower(scheme) {
	case schemeHTTP, schemeHTTPS:
		return r.http
	case schemeGRPC:
		return r.grpc
	default:
		return nil
	}
}
