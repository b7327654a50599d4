package pipeline

import (
	"context"
	"time"

	"github.com/fieldvoice/backoffice/internal/entity"
	"github.com/fieldvoice/backoffice/internal/tasks"
)

// processEstimate transcribes the voice note and records it in the estimate
// vault. Task extraction runs best-effort on top; its failure downgrades the
// estimate to transcription-only but never fails the job.
func (p *Processor) processEstimate(ctx context.Context, job *entity.Job) error {
	text, err := p.transcribeLocked(ctx, job.ID, job.Inputs.AudioPath)
	if err != nil {
		p.Logger.Error("pipeline.estimate.transcribe_failed", "job_id", job.ID, "error", err)
		p.failJob(ctx, job, failureMessage("transcription", err))
		return err
	}

	outcome := p.extractTasks(ctx, job, text)

	outputs := entity.JobOutputs{Transcription: &text}
	if outcome.SummaryPath != "" {
		outputs.SummaryPath = &outcome.SummaryPath
	}

	p.Logger.Info("pipeline.estimate.complete",
		"job_id", job.ID, "tasks", len(outcome.Tasks), "extraction_skipped", outcome.Skipped())
	return p.completeJob(ctx, job, outputs)
}

// extractTasks runs the optional extraction stage and vault write. Every
// failure path returns a skipped outcome instead of an error.
func (p *Processor) extractTasks(ctx context.Context, job *entity.Job, transcription string) TaskOutcome {
	if p.Extractor == nil || p.Vault == nil {
		return TaskOutcome{SkipReason: "extraction not configured"}
	}

	jobName := job.Inputs.TargetID
	names, err := p.Extractor.ExtractTasks(ctx, tasks.Request{
		CompanyToken:  job.Inputs.CompanyToken,
		JobName:       jobName,
		Transcription: transcription,
		VaultContext:  p.Vault.Context(job.Inputs.CompanyToken, jobName),
	})
	if err != nil {
		p.Logger.Warn("pipeline.estimate.extract_skipped", "job_id", job.ID, "error", err)
		return TaskOutcome{SkipReason: "task extraction unavailable"}
	}

	summaryPath, err := p.Vault.WriteEstimate(job.Inputs.CompanyToken, jobName,
		job.ID.String(), time.Now(), transcription, names)
	if err != nil {
		p.Logger.Warn("pipeline.estimate.vault_skipped", "job_id", job.ID, "error", err)
		return TaskOutcome{Tasks: names, SkipReason: "vault write failed"}
	}

	return TaskOutcome{Tasks: names, SummaryPath: summaryPath}
}
