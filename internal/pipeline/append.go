package pipeline

import (
	"context"

	"github.com/fieldvoice/backoffice/internal/entity"
)

// processEstimateAppend transcribes the addendum and merges it into the most
// recent completed transcription for the same company/target. The merged text
// becomes this job's transcription; earlier rows stay untouched.
func (p *Processor) processEstimateAppend(ctx context.Context, job *entity.Job) error {
	text, err := p.transcribeLocked(ctx, job.ID, job.Inputs.AudioPath)
	if err != nil {
		p.Logger.Error("pipeline.append.transcribe_failed", "job_id", job.ID, "error", err)
		p.failJob(ctx, job, failureMessage("transcription", err))
		return err
	}

	existing, err := p.Repo.LatestTranscriptForTarget(ctx, job.Inputs.CompanyToken, job.Inputs.TargetID)
	if err != nil {
		p.Logger.Error("pipeline.append.lookup_failed", "job_id", job.ID, "error", err)
		p.failJob(ctx, job, "estimate lookup failed")
		return err
	}

	merged := MergeTranscripts(existing, text)

	p.Logger.Info("pipeline.append.complete", "job_id", job.ID, "had_existing", existing != "")
	return p.completeJob(ctx, job, entity.JobOutputs{Transcription: &merged})
}
