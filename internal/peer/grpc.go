package peer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
)

const (
	// CodecName is the content subtype used by the peer service.
	CodecName = "json"

	serviceName          = "quorumledger.v1.PeerService"
	validateChangeMethod = "/" + serviceName + "/ValidateChange"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

// PeerServiceServer is implemented by the node side of the gRPC peer service.
type PeerServiceServer interface {
	ValidateChange(ctx context.Context, req *ChangeRequest) (*ChangeResponse, error)
}

// RegisterPeerServiceServer registers srv on s.
func RegisterPeerServiceServer(s grpc.ServiceRegistrar, srv PeerServiceServer) {
	s.RegisterService(&peerServiceDesc, srv)
}

func validateChangeHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ChangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PeerServiceServer).ValidateChange(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: validateChangeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PeerServiceServer).ValidateChange(ctx, req.(*ChangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var peerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PeerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ValidateChange",
			Handler:    validateChangeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quorumledger/v1/peer.proto",
}

// GRPCClient proposes changes to peers addressed as grpc://host:port. Connections
// are created lazily and reused.
type GRPCClient struct {
	dialOpts []grpc.DialOption
	timeout  time.Duration

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// GRPCOption customizes a GRPCClient.
type GRPCOption func(*GRPCClient)

// WithDialOptions appends dial options, e.g. a custom dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) GRPCOption {
	return func(c *GRPCClient) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

// WithTimeout bounds every call to a peer.
func WithTimeout(d time.Duration) GRPCOption {
	return func(c *GRPCClient) {
		c.timeout = d
	}
}

// NewGRPCClient constructs a GRPCClient with insecure transport and client metrics.
func NewGRPCClient(opts ...GRPCOption) *GRPCClient {
	c := &GRPCClient{
		dialOpts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithUnaryInterceptor(grpcPrometheus.UnaryClientInterceptor),
			grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
		},
		conns: make(map[string]*grpc.ClientConn),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProposeChange calls ValidateChange on peer. An OK answer with approved=false is
// returned as a RejectedError.
func (c *GRPCClient) ProposeChange(ctx context.Context, peer string, p consensus.Proposal) error {
	conn, err := c.conn(peer)
	if err != nil {
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := NewChangeRequest(p)
	resp := new(ChangeResponse)
	if err := conn.Invoke(ctx, validateChangeMethod, &req, resp); err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.PermissionDenied {
			return &RejectedError{Peer: peer, Status: int(st.Code()), Reason: st.Message()}
		}
		return fmt.Errorf("invoke %s on %s: %w", validateChangeMethod, peer, err)
	}
	if !resp.Approved {
		return &RejectedError{Peer: peer, Status: int(codes.OK), Reason: resp.Reason}
	}
	return nil
}

func (c *GRPCClient) conn(peer string) (*grpc.ClientConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conn, ok := c.conns[peer]; ok {
		return conn, nil
	}

	target := "passthrough:///" + strings.TrimPrefix(peer, schemeGRPC+"://")
	conn, err := grpc.NewClient(target, c.dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", peer, err)
	}
	c.conns[peer] = conn
	return conn, nil
}

// Close closes every cached connection.
func (c *GRPCClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for peer, conn := range c.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close %s: %w", peer, err)
		}
		delete(c.conns, peer)
	}
	return firstErr
}
