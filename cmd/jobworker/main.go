// jobworker runs a standalone polling worker against the shared database.
// Multiple instances may run on the same host; the database claim and the
// engine lock file keep them coordinated.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fieldvoice/backoffice/internal/common"
	"github.com/fieldvoice/backoffice/internal/document"
	"github.com/fieldvoice/backoffice/internal/enginelock"
	"github.com/fieldvoice/backoffice/internal/pipeline"
	repo "github.com/fieldvoice/backoffice/internal/repository"
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

	logger.Info("job worker starting", "worker_id", w.ID())
	_ = w.Run(ctx)
}
