package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fieldvoice/backoffice/internal/document"
	"github.com/fieldvoice/backoffice/internal/entity"
)

// processReceipt transcribes the voice note, then renders the receipt image
// and transcription into a single PDF next to the image.
func (p *Processor) processReceipt(ctx context.Context, job *entity.Job) error {
	text, err := p.transcribeLocked(ctx, job.ID, job.Inputs.AudioPath)
	if err != nil {
		p.Logger.Error("pipeline.receipt.transcribe_failed", "job_id", job.ID, "error", err)
		p.failJob(ctx, job, failureMessage("transcription", err))
		return err
	}

	docPath, err := p.Renderer.RenderReceipt(ctx, document.RenderRequest{
		ImagePath:     job.Inputs.ImagePath,
		Transcription: text,
		CompanyName:   job.Inputs.CompanyToken,
		TargetID:      job.Inputs.TargetID,
		Timestamp:     time.Now(),
		OutDir:        filepath.Dir(job.Inputs.ImagePath),
	})
	if err != nil {
		p.Logger.Error("pipeline.receipt.render_failed", "job_id", job.ID, "error", err)
		p.failJob(ctx, job, failureMessage("document rendering", err))
		return err
	}

	p.Logger.Info("pipeline.receipt.complete", "job_id", job.ID, "document", docPath)
	return p.completeJob(ctx, job, entity.JobOutputs{
		Transcription: &text,
		DocumentPath:  &docPath,
	})
}
