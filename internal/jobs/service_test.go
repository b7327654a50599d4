package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/internal/entity"
)

type memRepo struct {
	jobs      map[uuid.UUID]*entity.Job
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{jobs: map[uuid.UUID]*entity.Job{}}
}

func (r *memRepo) Create(_ context.Context, kind constants.JobKind, inputs entity.JobInputs) (*entity.Job, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	job := &entity.Job{
		ID:        uuid.New(),
		Kind:      kind,
		Status:    constants.JobStatusPending,
		Inputs:    inputs,
		CreatedAt: time.Now(),
	}
	r.jobs[job.ID] = job
	return job, nil
}

func (r *memRepo) ClaimNextPending(context.Context, constants.JobKind, string) (*entity.Job, error) {
	return nil, nil
}

func (r *memRepo) MarkComplete(context.Context, uuid.UUID, entity.JobOutputs) error { return nil }

func (r *memRepo) MarkError(context.Context, uuid.UUID, string) error { return nil }

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	return r.jobs[id], nil
}

func (r *memRepo) LatestTranscriptForTarget(context.Context, string, string) (string, error) {
	return "", nil
}

func (r *memRepo) ListFinished(context.Context, int) ([]*entity.Job, error) { return nil, nil }

func (r *memRepo) ListStale(context.Context, time.Duration) ([]*entity.Job, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validSubmit(kind string) SubmitRequest {
	req := SubmitRequest{
		Kind:         kind,
		CompanyToken: "acme",
		TargetID:     "deck-build",
		AudioPath:    "/tmp/note.wav",
	}
	if kind == "receipt" {
		req.ImagePath = "/tmp/receipt.jpg"
	}
	return req
}

func TestSubmitCreatesPendingJob(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, testLogger())

	job, err := svc.Submit(context.Background(), validSubmit("estimate"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if job.Status != constants.JobStatusPending {
		t.Errorf("status = %s, want pending", job.Status)
	}
	if job.Kind != constants.JobKindEstimate {
		t.Errorf("kind = %s", job.Kind)
	}
}

func TestSubmitRejectsUnknownKind(t *testing.T) {
	svc := NewService(newMemRepo(), testLogger())
	if _, err := svc.Submit(context.Background(), validSubmit("invoice")); err == nil {
		t.Fatal("expected validation error for unknown kind")
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	svc := NewService(newMemRepo(), testLogger())

	req := validSubmit("estimate")
	req.AudioPath = ""
	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Error("expected error for missing audio_path")
	}

	req = validSubmit("estimate")
	req.CompanyToken = "   "
	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Error("expected error for blank company_token")
	}
}

func TestSubmitReceiptRequiresImage(t *testing.T) {
	svc := NewService(newMemRepo(), testLogger())

	req := validSubmit("receipt")
	req.ImagePath = ""
	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Fatal("expected error for receipt without image_path")
	}
}

func TestSubmitEstimateImageOptional(t *testing.T) {
	svc := NewService(newMemRepo(), testLogger())

	req := validSubmit("estimate")
	req.ImagePath = ""
	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

func TestSubmitRejectsBadExtensions(t *testing.T) {
	svc := NewService(newMemRepo(), testLogger())

	req := validSubmit("estimate")
	req.AudioPath = "/tmp/note.pdf"
	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Error("expected error for non-audio extension")
	}

	req = validSubmit("receipt")
	req.ImagePath = "/tmp/receipt.gif"
	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Error("expected error for unsupported image extension")
	}
}

func TestSubmitRepoFailure(t *testing.T) {
	repo := newMemRepo()
	repo.createErr = errors.New("db down")
	svc := NewService(repo, testLogger())

	if _, err := svc.Submit(context.Background(), validSubmit("estimate")); err == nil {
		t.Fatal("expected error when create fails")
	}
}

func TestGetStatusHidesErrorMessageUnlessFailed(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, testLogger())

	job, err := svc.Submit(context.Background(), validSubmit("estimate"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	rec, err := svc.GetStatus(context.Background(), job.ID.String())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if rec.Status != constants.JobStatusPending {
		t.Errorf("status = %s", rec.Status)
	}
	if rec.ErrorMessage != "" {
		t.Errorf("error message leaked for non-error status: %q", rec.ErrorMessage)
	}

	msg := "audio file missing or unreadable"
	stored := repo.jobs[job.ID]
	stored.Status = constants.JobStatusError
	stored.ErrorMessage = &msg

	rec, err = svc.GetStatus(context.Background(), job.ID.String())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if rec.ErrorMessage != msg {
		t.Errorf("error message = %q, want %q", rec.ErrorMessage, msg)
	}
}

func TestGetStatusUnknownID(t *testing.T) {
	svc := NewService(newMemRepo(), testLogger())

	if _, err := svc.GetStatus(context.Background(), uuid.NewString()); err == nil {
		t.Error("expected not-found error")
	}
	if _, err := svc.GetStatus(context.Background(), "not-a-uuid"); err == nil {
		t.Error("expected invalid-argument error")
	}
}
