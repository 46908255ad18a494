package transport

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/quorumledger/internal/peer"
)

// PeerHandler implements peer.PeerServiceServer.
type PeerHandler struct {
	policy ApprovalPolicy
	logger *zap.Logger
}

// NewPeerHandler returns a PeerHandler voting with policy.
func NewPeerHandler(policy ApprovalPolicy, logger *zap.Logger) *PeerHandler {
	if policy == nil {
		policy = ApproveAll{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeerHandler{policy: policy, logger: logger.Named("peer_handler")}
}

// ValidateChange votes on a peer's proposal. Rejections are answered with OK and
// approved=false; only malformed requests produce an error status.
func (h *PeerHandler) ValidateChange(ctx context.Context, req *peer.ChangeRequest) (*peer.ChangeResponse, error) {
	if req == nil || len(req.NewData) == 0 {
		return nil, status.Error(codes.InvalidArgument, "newData is required")
	}

	approved, reason := h.policy.Approve(ctx, req.Index, req.NewData)
	h.logger.Debug("change vote",
		zap.String("proposal_id", req.ProposalID),
		zap.Int("index", req.Index),
		zap.Bool("approved", approved))
	return &peer.ChangeResponse{Approved: approved, Reason: reason}, nil
}
