// Package server exposes the gRPC surface. Handlers stay thin; validation
// and persistence live in the service and repository layers.
package server

import (
	"context"
	"log/slog"

	jobsv1 "github.com/fieldvoice/backoffice/gen/proto/jobs/v1"
	"github.com/fieldvoice/backoffice/internal/jobs"
	"github.com/fieldvoice/backoffice/internal/utils"
)

type JobsService struct {
	jobsv1.UnimplementedJobsServiceServer
	svc    *jobs.Service
	logger *slog.Logger
}

func NewJobsService(svc *jobs.Service, logger *slog.Logger) *JobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsService{svc: svc, logger: logger}
}

func (s *JobsService) SubmitJob(ctx context.Context, req *jobsv1.SubmitJobRequest) (*jobsv1.SubmitJobResponse, error) {
	job, err := s.svc.Submit(ctx, jobs.SubmitRequest{
		Kind:         req.GetKind(),
		CompanyToken: req.GetCompanyToken(),
		TargetID:     req.GetTargetId(),
		AudioPath:    req.GetAudioPath(),
		ImagePath:    req.GetImagePath(),
	})
	if err != nil {
		return nil, err
	}

	return &jobsv1.SubmitJobResponse{JobId: job.ID.String()}, nil
}

func (s *JobsService) GetJobStatus(ctx context.Context, req *jobsv1.GetJobStatusRequest) (*jobsv1.GetJobStatusResponse, error) {
	rec, err := s.svc.GetStatus(ctx, req.GetJobId())
	if err != nil {
		return nil, err
	}

	return &jobsv1.GetJobStatusResponse{Job: utils.ToPBJobStatus(rec)}, nil
}
