package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
	"github.com/goodnatureofminers/quorumledger/internal/journal"
	journalClickhouse "github.com/goodnatureofminers/quorumledger/internal/journal/clickhouse"
	"github.com/goodnatureofminers/quorumledger/internal/ledger"
	"github.com/goodnatureofminers/quorumledger/internal/metrics"
	"github.com/goodnatureofminers/quorumledger/internal/peer"
	"github.com/goodnatureofminers/quorumledger/internal/service"
	"github.com/goodnatureofminers/quorumledger/internal/transport"
)

type config struct {
	Addr        string `long:"addr" env:"LEDGER_ADDR" description:"REST API listen address" default:":3000"`
	GRPCAddr    string `long:"grpc-addr" env:"LEDGER_GRPC_ADDR" description:"gRPC peer service listen address, empty to disable" default:":3100"`
	MetricsAddr string `long:"metrics-addr" env:"LEDGER_METRICS_ADDR" description:"address for metrics server, empty to disable" default:":2112"`

	Difficulty     int           `long:"difficulty" env:"LEDGER_DIFFICULTY" description:"leading zero hex digits required of a mined block" default:"2"`
	Peers          []string      `long:"peer" env:"LEDGER_PEERS" env-delim:"," description:"peer node address (http://, https:// or grpc://), repeatable" default:"http://localhost:3001" default:"http://localhost:3002"`
	Quorum         float64       `long:"quorum" env:"LEDGER_QUORUM" description:"share of peers that must approve a modification" default:"0.5"`
	PeerTimeout    time.Duration `long:"peer-timeout" env:"LEDGER_PEER_TIMEOUT" description:"timeout of a single peer request" default:"5s"`
	ApprovalPolicy string        `long:"approval-policy" env:"LEDGER_APPROVAL_POLICY" description:"how this node votes on peer proposals" choice:"all" choice:"range" default:"all"`
	AuditInterval  time.Duration `long:"audit-interval" env:"LEDGER_AUDIT_INTERVAL" description:"chain verification interval, 0 to disable" default:"30s"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"LEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN of the event journal, empty to disable"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"LEDGER_JOURNAL_FLUSH_SIZE" description:"events per journal insert" default:"100"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"LEDGER_JOURNAL_FLUSH_INTERVAL" description:"max delay before queued events are inserted" default:"2s"`
	JournalRPS           int           `long:"journal-rps" env:"LEDGER_JOURNAL_RPS" description:"max journal inserts per second" default:"10"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger node failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.Quorum < 0 || cfg.Quorum > 1 {
		return fmt.Errorf("quorum %v must be within [0, 1]", cfg.Quorum)
	}

	chain, err := ledger.NewChain(cfg.Difficulty,
		ledger.WithLogger(logger.Named("chain")),
		ledger.WithMiningMetrics(metrics.NewMiner()),
	)
	if err != nil {
		return fmt.Errorf("init chain: %w", err)
	}

	grpcClient := peer.NewGRPCClient(peer.WithTimeout(cfg.PeerTimeout))
	defer func() {
		if err := grpcClient.Close(); err != nil {
			logger.Warn("failed to close peer connections", zap.Error(err))
		}
	}()
	router := peer.NewRouter(
		peer.NewObservedClient(peer.NewHTTPClient(cfg.PeerTimeout), metrics.NewPeerClient("http")),
		peer.NewObservedClient(grpcClient, metrics.NewPeerClient("grpc")),
	)
	coordinator, err := consensus.NewCoordinator(chain, router, metrics.NewCoordinator(), logger)
	if err != nil {
		return fmt.Errorf("init coordinator: %w", err)
	}

	events, closeJournal, err := newJournal(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	svc, err := service.NewLedgerService(chain, coordinator, events, service.LedgerConfig{
		Peers:  cfg.Peers,
		Quorum: cfg.Quorum,
	}, logger)
	if err != nil {
		return fmt.Errorf("init ledger service: %w", err)
	}

	policy, err := transport.NewApprovalPolicy(cfg.ApprovalPolicy, chain)
	if err != nil {
		return err
	}

	if cfg.AuditInterval > 0 {
		auditor, err := service.NewAuditor(chain, metrics.NewAuditor(), cfg.AuditInterval, logger)
		if err != nil {
			return fmt.Errorf("init auditor: %w", err)
		}
		go func() {
			if err := auditor.Run(ctx); err != nil {
				logger.Error("auditor failed", zap.Error(err))
			}
		}()
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}
	if cfg.GRPCAddr != "" {
		if err := startGRPCServer(ctx, cfg.GRPCAddr, transport.NewPeerHandler(policy, logger), logger); err != nil {
			return err
		}
	}

	logger.Info("ledger node configured",
		zap.Int("difficulty", cfg.Difficulty),
		zap.Strings("peers", cfg.Peers),
		zap.Float64("quorum", cfg.Quorum),
		zap.String("approval_policy", cfg.ApprovalPolicy))

	return serveAPI(ctx, cfg.Addr, transport.NewLedgerHandler(svc, policy, logger), logger)
}

func newJournal(ctx context.Context, cfg config, logger *zap.Logger) (service.Journal, func(), error) {
	if cfg.ClickhouseDSN == "" {
		logger.Info("event journal disabled")
		return journal.Discard, func() {}, nil
	}

	repo, err := journalClickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewJournalRepository())
	if err != nil {
		return nil, nil, fmt.Errorf("init journal repository: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := repo.Ping(pingCtx); err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	writer := journal.NewWriter(repo, journal.Config{
		FlushSize:      cfg.JournalFlushSize,
		FlushInterval:  cfg.JournalFlushInterval,
		RPS:            cfg.JournalRPS,
		EnqueueTimeout: time.Second,
	}, metrics.NewJournal(), logger)
	writer.Start(ctx)

	return writer, func() {
		writer.Stop()
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close journal repository", zap.Error(err))
		}
	}, nil
}

// newAPIHandler mounts the ledger routes and metrics behind CORS. PUT is allowed
// for /modifyData.
func newAPIHandler(handler *transport.LedgerHandler) http.Handler {
	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodHead},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

func serveAPI(ctx context.Context, addr string, handler *transport.LedgerHandler, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           newAPIHandler(handler),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func startGRPCServer(ctx context.Context, addr string, handler peer.PeerServiceServer, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	peer.RegisterPeerServiceServer(grpcServer, handler)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	go func() {
		logger.Info("Starting gRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
