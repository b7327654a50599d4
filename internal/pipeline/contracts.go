package pipeline

import (
	"context"
	"time"

	"github.com/fieldvoice/backoffice/internal/document"
	"github.com/fieldvoice/backoffice/internal/tasks"
)

// Transcriber is the inference-bound stage. Callers hold the engine lock for
// the duration of the call and nothing else.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TaskExtractor is the optional estimate stage. Its failures never fail a job.
type TaskExtractor interface {
	ExtractTasks(ctx context.Context, req tasks.Request) ([]string, error)
}

// DocumentRenderer produces the combined receipt PDF.
type DocumentRenderer interface {
	RenderReceipt(ctx context.Context, req document.RenderRequest) (string, error)
}

// Vault accumulates estimate markdown per company/job.
type Vault interface {
	Context(companyToken, jobName string) string
	WriteEstimate(companyToken, jobName, estimateID string, when time.Time, transcription string, taskNames []string) (string, error)
}

// TaskOutcome is the typed result of the optional extraction stage, so
// callers and tests can tell "ran and produced tasks" from "skipped".
type TaskOutcome struct {
	Tasks       []string
	SummaryPath string
	SkipReason  string
}

// Skipped reports whether extraction was skipped rather than run to success.
func (o TaskOutcome) Skipped() bool {
	return o.SkipReason != ""
}
