package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	"github.com/klearrshipping/cudabot/internal/async"
	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/fields"
	"github.com/klearrshipping/cudabot/internal/ingest"
	"github.com/klearrshipping/cudabot/internal/llm"
	"github.com/klearrshipping/cudabot/internal/llm/openai"
	"github.com/klearrshipping/cudabot/internal/pipeline"
	"github.com/klearrshipping/cudabot/internal/repository"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(slogger)

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB pool
	pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, slogger)
	if err != nil {
		log.Fatalf("creating DB pool: %v", err)
	}
	defer repository.Close(pool, slogger)

	// Healthcheck DB on startup
	if err := repository.HealthCheck(ctx, pool, 3*time.Second, slogger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Code tables. An order can always be classified once these load, so a
	// bad table is fatal here rather than surfacing per order later.
	registry, err := fields.NewRegistry(cfg.Tables, slogger)
	if err != nil {
		log.Fatalf("loading code tables: %v", err)
	}

	// Optional LLM extractor. Without a key, orders carrying only free text
	// still resolve to table defaults.
	var extractor llm.FieldExtractor
	if cfg.LLM.APIKey != "" {
		extractor = openai.NewClient(openai.Config{
			APIKey:          cfg.LLM.APIKey,
			BaseURL:         cfg.LLM.BaseURL,
			Model:           cfg.LLM.Model,
			Temperature:     cfg.LLM.Temperature,
			Timeout:         cfg.LLM.Timeout,
			LenientOptional: true,
		}, slogger)
	} else {
		log.Infow("OPENROUTER_API_KEY not set, free-text extraction disabled")
	}

	orders := repository.NewOrderRepository(pool, slogger)
	results := repository.NewFieldResultRepository(pool, slogger)
	pipe := pipeline.NewPipeline(slogger, pipeline.Config{}, registry, orders, results, extractor)

	// Order drop directory -> watcher -> worker queue
	if cfg.Ingest.WatchDir != "" {
		queue := async.NewOrderQueue(func(ctx context.Context, path string) error {
			return ingest.ProcessPath(ctx, path, pipe, slogger)
		}, slogger)

		events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{cfg.Ingest.WatchDir},
			InitialScan: true,
			Debounce:    cfg.Ingest.Debounce,
		}, slogger)
		if err != nil {
			log.Fatalf("starting order watcher: %v", err)
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-events:
					if !ok {
						return
					}
					if err := queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now()}); err != nil {
						log.Warnw("enqueue order", "path", path, "error", err)
					}
				case err, ok := <-errs:
					if ok && err != nil {
						log.Warnw("watcher error", "error", err)
					}
				}
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			queue.Shutdown(shutdownCtx)
		}()
		log.Infof("watching %s for order files", cfg.Ingest.WatchDir)
	}

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
