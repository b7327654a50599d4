// backofficed runs the full backoffice process: the gRPC submission surface
// plus one polling worker. Deployments that want more throughput add
// jobworker processes alongside it.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	jobsv1 "github.com/fieldvoice/backoffice/gen/proto/jobs/v1"
	"github.com/fieldvoice/backoffice/internal/common"
	"github.com/fieldvoice/backoffice/internal/document"
	"github.com/fieldvoice/backoffice/internal/enginelock"
	"github.com/fieldvoice/backoffice/internal/jobs"
	"github.com/fieldvoice/backoffice/internal/pipeline"
	repo "github.com/fieldvoice/backoffice/internal/repository"
	svc "github.com/fieldvoice/backoffice/internal/server"
	"github.com/fieldvoice/backoffice/internal/tasks"
	"github.com/fieldvoice/backoffice/internal/transcribe"
	"github.com/fieldvoice/backoffice/internal/worker"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}
	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobRepo := repo.NewJobRepository(entc, logger)

	lock := enginelock.New(cfg.Engine.LockPath, logger,
		enginelock.WithAcquireTimeout(cfg.Engine.AcquireTimeout),
		enginelock.WithRetryDelay(cfg.Engine.RetryDelay),
	)
	transcriber := transcribe.NewWhisper(transcribe.Config{
		Binary:    cfg.Whisper.Binary,
		ModelPath: cfg.Whisper.ModelPath,
		Language:  cfg.Whisper.Language,
	}, logger)
	extractor := tasks.NewExtractor(tasks.Config{
		BaseURL: cfg.Extractor.BaseURL,
		Model:   cfg.Extractor.Model,
		Timeout: cfg.Extractor.Timeout,
	}, logger)
	vault := tasks.NewVault(cfg.Extractor.VaultDir)
	renderer := document.NewRenderer(logger)

	processor := pipeline.NewProcessor(jobRepo, lock, transcriber, extractor, renderer, vault, logger)
	processor.EngineMaxAttempts = cfg.Engine.MaxAttempts

	w := worker.New(jobRepo, processor, logger,
		worker.WithPollInterval(cfg.Worker.PollInterval),
		worker.WithStageTimeout(cfg.Worker.StageTimeout),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	jobsService := svc.NewJobsService(jobs.NewService(jobRepo, logger), logger)
	jobsv1.RegisterJobsServiceServer(grpcServer, jobsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		_ = w.Run(ctx)
	}()

	logger.Info("backoffice listening", "addr", cfg.Server.GRPCAddr, "worker_id", w.ID())
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	<-workerDone
	grpcServer.GracefulStop()
}
