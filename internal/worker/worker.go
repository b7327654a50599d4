// Package worker drives the polling loop. Any number of worker processes may
// run against the same database; the claim update in the repository is what
// keeps them from colliding.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/internal/entity"
	"github.com/fieldvoice/backoffice/internal/pipeline"
	"github.com/fieldvoice/backoffice/internal/repository"
)

type Worker struct {
	repo   repository.JobRepository
	proc   *pipeline.Processor
	logger *slog.Logger

	id           string
	pollInterval time.Duration
	stageTimeout time.Duration
}

type Option func(*Worker)

func WithPollInterval(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

func WithStageTimeout(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.stageTimeout = d
		}
	}
}

func WithID(id string) Option {
	return func(w *Worker) {
		if id != "" {
			w.id = id
		}
	}
}

func New(repo repository.JobRepository, proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Worker{
		repo:         repo,
		proc:         proc,
		logger:       logger,
		id:           defaultWorkerID(),
		pollInterval: 2 * time.Second,
		stageTimeout: 10 * time.Minute,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// defaultWorkerID identifies this process in claimed_by for diagnostics.
func defaultWorkerID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s-%d-%s", host, os.Getpid(), uuid.NewString()[:8])
}

// ID returns the identity stamped into claimed_by.
func (w *Worker) ID() string { return w.id }

// Run polls until ctx is cancelled. An in-flight job always finishes before
// shutdown completes.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker started", "worker_id", w.id, "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		w.cycle(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info("worker stopped", "worker_id", w.id)
			return nil
		case <-ticker.C:
		}
	}
}

// cycle visits each kind once in priority order, processing at most one job
// per kind. Capping the cycle at one job per kind bounds per-cycle latency
// and interleaves engine time across worker processes. A claim that comes
// back empty, whether the queue is empty or another worker won the race,
// just moves the scan to the next kind.
func (w *Worker) cycle(ctx context.Context) {
	for _, kind := range constants.JobKinds {
		if ctx.Err() != nil {
			return
		}
		job, err := w.repo.ClaimNextPending(ctx, kind, w.id)
		if err != nil {
			w.logger.Error("claim failed", "worker_id", w.id, "kind", kind, "error", err)
			continue
		}
		if job == nil {
			continue
		}
		w.runJob(ctx, job)
	}
}

func (w *Worker) runJob(ctx context.Context, job *entity.Job) {
	w.logger.Info("claimed job", "worker_id", w.id, "job_id", job.ID, "kind", job.Kind)

	jobCtx, cancel := context.WithTimeout(ctx, w.stageTimeout)
	err := w.proc.Process(jobCtx, job)
	cancel()

	if err != nil {
		w.logger.Error("job failed", "worker_id", w.id, "job_id", job.ID, "kind", job.Kind, "error", err)
		return
	}
	w.logger.Info("job finished", "worker_id", w.id, "job_id", job.ID, "kind", job.Kind)
}
