package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/gen/ent"
	"github.com/fieldvoice/backoffice/gen/ent/job"
	"github.com/fieldvoice/backoffice/internal/entity"
	"github.com/fieldvoice/backoffice/internal/utils"
)

// ErrNotProcessing is returned by the finalizers when the guarded update
// matched no row: the job does not exist, already finished, or was never
// claimed. A job is finalized at most once.
var ErrNotProcessing = errors.New("job is not in processing state")

type JobRepository interface {
	// Create inserts a pending job. Non-blocking; callers never wait on
	// the pipeline.
	Create(ctx context.Context, kind constants.JobKind, inputs entity.JobInputs) (*entity.Job, error)

	// ClaimNextPending atomically transitions the oldest pending job of
	// the given kind to processing and returns it. Returns (nil, nil)
	// when no job is eligible or the claim raced and lost; the two cases
	// are indistinguishable on purpose.
	ClaimNextPending(ctx context.Context, kind constants.JobKind, workerID string) (*entity.Job, error)

	// MarkComplete finalizes a processing job with its outputs.
	MarkComplete(ctx context.Context, id uuid.UUID, outputs entity.JobOutputs) error

	// MarkError finalizes a processing job with a user-facing message.
	MarkError(ctx context.Context, id uuid.UUID, message string) error

	// GetByID returns the job, or (nil, nil) when no such job exists.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// LatestTranscriptForTarget returns the newest completed transcription
	// recorded for a company/target pair, or "" when none exists.
	LatestTranscriptForTarget(ctx context.Context, companyToken, targetID string) (string, error)

	// ListFinished returns terminal jobs, newest first, for reporting.
	ListFinished(ctx context.Context, limit int) ([]*entity.Job, error)

	// ListStale returns jobs stuck in processing longer than olderThan.
	// Diagnostics only; nothing reclaims them automatically.
	ListStale(ctx context.Context, olderThan time.Duration) ([]*entity.Job, error)
}

type jobRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobRepo{client: client, logger: logger}
}

func (r *jobRepo) Create(ctx context.Context, kind constants.JobKind, inputs entity.JobInputs) (*entity.Job, error) {
	builder := r.client.Job.Create().
		SetKind(string(kind)).
		SetStatus(string(constants.JobStatusPending)).
		SetCompanyToken(inputs.CompanyToken).
		SetTargetID(inputs.TargetID).
		SetAudioPath(inputs.AudioPath)
	if inputs.ImagePath != "" {
		builder = builder.SetImagePath(inputs.ImagePath)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("job create failed", "kind", kind, "target_id", inputs.TargetID, "error", err)
		return nil, err
	}
	r.logger.Info("job created", "job_id", row.ID, "kind", kind, "company", inputs.CompanyToken, "target_id", inputs.TargetID)
	return utils.ToJob(row), nil
}

func (r *jobRepo) ClaimNextPending(ctx context.Context, kind constants.JobKind, workerID string) (*entity.Job, error) {
	// The candidate query only nominates the oldest pending job; the
	// conditional update below is the claim itself. Zero affected rows
	// means another worker won the race, which is not an error.
	cand, err := r.client.Job.Query().
		Where(
			job.KindEQ(string(kind)),
			job.StatusEQ(string(constants.JobStatusPending)),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("claim candidate query failed", "kind", kind, "error", err)
		return nil, err
	}

	n, err := r.client.Job.Update().
		Where(
			job.IDEQ(cand.ID),
			job.StatusEQ(string(constants.JobStatusPending)),
		).
		SetStatus(string(constants.JobStatusProcessing)).
		SetClaimedAt(time.Now()).
		SetClaimedBy(workerID).
		Save(ctx)
	if err != nil {
		r.logger.Error("claim update failed", "job_id", cand.ID, "error", err)
		return nil, err
	}
	if n == 0 {
		r.logger.Debug("claim raced and lost", "job_id", cand.ID, "kind", kind, "worker", workerID)
		return nil, nil
	}

	claimed, err := r.client.Job.Get(ctx, cand.ID)
	if err != nil {
		return nil, err
	}
	r.logger.Info("job claimed", "job_id", claimed.ID, "kind", kind, "worker", workerID)
	return utils.ToJob(claimed), nil
}

func (r *jobRepo) MarkComplete(ctx context.Context, id uuid.UUID, outputs entity.JobOutputs) error {
	upd := r.client.Job.Update().
		Where(
			job.IDEQ(id),
			job.StatusEQ(string(constants.JobStatusProcessing)),
		).
		SetStatus(string(constants.JobStatusComplete)).
		SetCompletedAt(time.Now())
	if outputs.Transcription != nil {
		upd = upd.SetTranscription(*outputs.Transcription)
	}
	if outputs.DocumentPath != nil {
		upd = upd.SetDocumentPath(*outputs.DocumentPath)
	}
	if outputs.SummaryPath != nil {
		upd = upd.SetSummaryPath(*outputs.SummaryPath)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("job complete update failed", "job_id", id, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("job complete refused", "job_id", id, "reason", "not processing")
		return ErrNotProcessing
	}
	r.logger.Info("job completed", "job_id", id)
	return nil
}

func (r *jobRepo) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	n, err := r.client.Job.Update().
		Where(
			job.IDEQ(id),
			job.StatusEQ(string(constants.JobStatusProcessing)),
		).
		SetStatus(string(constants.JobStatusError)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("job error update failed", "job_id", id, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("job error refused", "job_id", id, "reason", "not processing")
		return ErrNotProcessing
	}
	r.logger.Warn("job failed", "job_id", id, "error_message", message)
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.client.Job.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToJob(row), nil
}

func (r *jobRepo) LatestTranscriptForTarget(ctx context.Context, companyToken, targetID string) (string, error) {
	row, err := r.client.Job.Query().
		Where(
			job.CompanyTokenEQ(companyToken),
			job.TargetIDEQ(targetID),
			job.StatusEQ(string(constants.JobStatusComplete)),
			job.TranscriptionNotNil(),
		).
		Order(ent.Desc(job.FieldCompletedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	if row.Transcription == nil {
		return "", nil
	}
	return *row.Transcription, nil
}

func (r *jobRepo) ListFinished(ctx context.Context, limit int) ([]*entity.Job, error) {
	q := r.client.Job.Query().
		Where(job.StatusIn(
			string(constants.JobStatusComplete),
			string(constants.JobStatusError),
		)).
		Order(ent.Desc(job.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("list finished jobs failed", "error", err)
		return nil, err
	}
	out := make([]*entity.Job, len(rows))
	for i, row := range rows {
		out[i] = utils.ToJob(row)
	}
	return out, nil
}

func (r *jobRepo) ListStale(ctx context.Context, olderThan time.Duration) ([]*entity.Job, error) {
	cutoff := time.Now().Add(-olderThan)
	rows, err := r.client.Job.Query().
		Where(
			job.StatusEQ(string(constants.JobStatusProcessing)),
			job.ClaimedAtLT(cutoff),
		).
		Order(ent.Asc(job.FieldClaimedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("list stale jobs failed", "error", err)
		return nil, err
	}
	out := make([]*entity.Job, len(rows))
	for i, row := range rows {
		out[i] = utils.ToJob(row)
	}
	return out, nil
}
