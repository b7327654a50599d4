// Package pipeline runs one claimed job through its kind-specific stages and
// writes the terminal state back. Ownership is established by the store's
// claim; nothing here re-checks it.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/internal/common"
	"github.com/fieldvoice/backoffice/internal/document"
	"github.com/fieldvoice/backoffice/internal/enginelock"
	"github.com/fieldvoice/backoffice/internal/entity"
	"github.com/fieldvoice/backoffice/internal/repository"
	"github.com/fieldvoice/backoffice/internal/transcribe"
)

// Processor coordinates the per-kind pipelines over shared collaborators.
type Processor struct {
	Repo        repository.JobRepository
	Lock        *enginelock.Lock
	Transcriber Transcriber
	Extractor   TaskExtractor
	Renderer    DocumentRenderer
	Vault       Vault
	Logger      *slog.Logger

	// EngineMaxAttempts bounds inline lock-acquisition retries within one
	// claim before the job is failed as engine-unavailable.
	EngineMaxAttempts int
}

func NewProcessor(repo repository.JobRepository, lock *enginelock.Lock, tr Transcriber, ex TaskExtractor, rn DocumentRenderer, vault Vault, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Repo:              repo,
		Lock:              lock,
		Transcriber:       tr,
		Extractor:         ex,
		Renderer:          rn,
		Vault:             vault,
		Logger:            logger,
		EngineMaxAttempts: 3,
	}
}

// Process runs the claimed job to a terminal state. The returned error is
// for worker logging only; the job row already records the outcome.
func (p *Processor) Process(ctx context.Context, job *entity.Job) error {
	switch job.Kind {
	case constants.JobKindReceipt:
		return p.processReceipt(ctx, job)
	case constants.JobKindEstimate:
		return p.processEstimate(ctx, job)
	case constants.JobKindEstimateAppend:
		return p.processEstimateAppend(ctx, job)
	default:
		// kind is validated at submission; reaching this means a schema drift
		p.failJob(ctx, job, "unsupported job kind")
		return fmt.Errorf("unsupported job kind %q", job.Kind)
	}
}

// transcribeLocked scopes the engine lock to exactly the inference call.
// Lock timeouts are retried inline within the same claim; the job stays
// processing throughout.
func (p *Processor) transcribeLocked(ctx context.Context, jobID uuid.UUID, audioPath string) (string, error) {
	attempts := p.EngineMaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		handle, err := p.Lock.Acquire(ctx)
		if err != nil {
			if errors.Is(err, enginelock.ErrTimeout) {
				if attempt < attempts {
					p.Logger.Warn("pipeline.engine.busy",
						"job_id", jobID, "attempt", attempt, "max_attempts", attempts)
					continue
				}
				return "", fmt.Errorf("engine lock attempts exhausted: %w", common.ErrEngineUnavailable)
			}
			return "", err
		}

		text, terr := p.Transcriber.Transcribe(ctx, audioPath)
		handle.Release()
		return text, terr
	}
}

// failureMessage maps stage errors to the user-visible error_message. It
// distinguishes bad input from engine trouble without leaking paths.
func failureMessage(stage string, err error) string {
	switch {
	case errors.Is(err, transcribe.ErrAudioMissing):
		return "audio file missing or unreadable"
	case errors.Is(err, document.ErrImageMissing):
		return "receipt image missing or unreadable"
	case errors.Is(err, common.ErrEngineUnavailable):
		return "transcription engine unavailable"
	default:
		return stage + " failed"
	}
}

// failJob and completeJob detach from the stage context before writing the
// terminal state. A stage timeout must still leave the job finalized, not
// stranded in processing.
func (p *Processor) failJob(ctx context.Context, job *entity.Job, message string) {
	if err := p.Repo.MarkError(context.WithoutCancel(ctx), job.ID, message); err != nil {
		p.Logger.Error("pipeline.finalize.error_failed", "job_id", job.ID, "error", err)
	}
}

func (p *Processor) completeJob(ctx context.Context, job *entity.Job, outputs entity.JobOutputs) error {
	if err := p.Repo.MarkComplete(context.WithoutCancel(ctx), job.ID, outputs); err != nil {
		p.Logger.Error("pipeline.finalize.complete_failed", "job_id", job.ID, "error", err)
		return err
	}
	return nil
}
