// Package jobs handles job submission and status business logic.
package jobs

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/internal/common"
	"github.com/fieldvoice/backoffice/internal/entity"
	"github.com/fieldvoice/backoffice/internal/repository"
	"github.com/fieldvoice/backoffice/internal/utils"
)

// Service validates submissions and hands them to the queue. It never runs
// pipeline work itself; submission returns as soon as the row is pending.
type Service struct {
	jobRepo repository.JobRepository
	logger  *slog.Logger
}

func NewService(jobRepo repository.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobRepo: jobRepo, logger: logger}
}

// SubmitRequest represents job submission parameters.
type SubmitRequest struct {
	Kind         string
	CompanyToken string
	TargetID     string
	AudioPath    string
	ImagePath    string
}

// Submit enqueues a new pending job and returns it immediately.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*entity.Job, error) {
	kind := constants.JobKind(strings.TrimSpace(req.Kind))
	companyToken := strings.TrimSpace(req.CompanyToken)
	targetID := strings.TrimSpace(req.TargetID)
	audioPath := strings.TrimSpace(req.AudioPath)
	imagePath := strings.TrimSpace(req.ImagePath)

	v := common.NewValidator()
	v.Field("kind", string(kind), common.JobKind)
	v.Field("company_token", companyToken, common.Required)
	v.Field("target_id", targetID, common.Required)
	v.Field("audio_path", audioPath, common.Required, common.AudioFile)
	if kind == constants.JobKindReceipt {
		v.Field("image_path", imagePath, common.Required, common.ImageFile)
	} else {
		v.Field("image_path", imagePath, common.ImageFile)
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Warn("job submission rejected", "kind", req.Kind, "error", err)
		return nil, err
	}

	job, err := s.jobRepo.Create(ctx, kind, entity.JobInputs{
		CompanyToken: companyToken,
		TargetID:     targetID,
		AudioPath:    audioPath,
		ImagePath:    imagePath,
	})
	if err != nil {
		return nil, common.InternalError("failed to enqueue job")
	}

	s.logger.Info("job submitted", "job_id", job.ID, "kind", kind, "target_id", targetID)
	return job, nil
}

// GetStatus returns the read model for a submitted job.
func (s *Service) GetStatus(ctx context.Context, id string) (*entity.StatusRecord, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, common.InvalidArgumentError("job id must be a valid UUID")
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, common.InternalError("failed to load job")
	}
	if job == nil {
		return nil, common.NotFoundError("job not found")
	}

	record := utils.ToStatusRecord(job)
	return record, nil
}
