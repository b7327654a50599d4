package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/internal/document"
	"github.com/fieldvoice/backoffice/internal/enginelock"
	"github.com/fieldvoice/backoffice/internal/entity"
	"github.com/fieldvoice/backoffice/internal/pipeline"
)

type claimRepo struct {
	queued     map[constants.JobKind][]*entity.Job
	claimOrder []constants.JobKind
	completed  map[uuid.UUID]entity.JobOutputs
	failed     map[uuid.UUID]string
}

func newClaimRepo() *claimRepo {
	return &claimRepo{
		queued:    map[constants.JobKind][]*entity.Job{},
		completed: map[uuid.UUID]entity.JobOutputs{},
		failed:    map[uuid.UUID]string{},
	}
}

func (r *claimRepo) enqueue(job *entity.Job) {
	r.queued[job.Kind] = append(r.queued[job.Kind], job)
}

func (r *claimRepo) Create(context.Context, constants.JobKind, entity.JobInputs) (*entity.Job, error) {
	return nil, errors.New("not implemented")
}

func (r *claimRepo) ClaimNextPending(_ context.Context, kind constants.JobKind, _ string) (*entity.Job, error) {
	r.claimOrder = append(r.claimOrder, kind)
	q := r.queued[kind]
	if len(q) == 0 {
		return nil, nil
	}
	job := q[0]
	r.queued[kind] = q[1:]
	job.Status = constants.JobStatusProcessing
	return job, nil
}

func (r *claimRepo) MarkComplete(_ context.Context, id uuid.UUID, outputs entity.JobOutputs) error {
	r.completed[id] = outputs
	return nil
}

func (r *claimRepo) MarkError(_ context.Context, id uuid.UUID, message string) error {
	r.failed[id] = message
	return nil
}

func (r *claimRepo) GetByID(context.Context, uuid.UUID) (*entity.Job, error) {
	return nil, errors.New("not implemented")
}

func (r *claimRepo) LatestTranscriptForTarget(context.Context, string, string) (string, error) {
	return "", nil
}

func (r *claimRepo) ListFinished(context.Context, int) ([]*entity.Job, error) { return nil, nil }

func (r *claimRepo) ListStale(context.Context, time.Duration) ([]*entity.Job, error) {
	return nil, nil
}

type stubTranscriber struct{ text string }

func (s stubTranscriber) Transcribe(context.Context, string) (string, error) {
	return s.text, nil
}

type stubRenderer struct{}

func (stubRenderer) RenderReceipt(_ context.Context, req document.RenderRequest) (string, error) {
	return req.ImagePath + ".pdf", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProcessor(t *testing.T, repo *claimRepo) *pipeline.Processor {
	t.Helper()
	lock := enginelock.New(filepath.Join(t.TempDir(), "engine.lock"), testLogger())
	return pipeline.NewProcessor(repo, lock, stubTranscriber{text: "hello"}, nil, stubRenderer{}, nil, testLogger())
}

func estimateJob() *entity.Job {
	return &entity.Job{
		ID:     uuid.New(),
		Kind:   constants.JobKindEstimate,
		Status: constants.JobStatusPending,
		Inputs: entity.JobInputs{
			CompanyToken: "acme",
			TargetID:     "deck-build",
			AudioPath:    "/tmp/note.wav",
		},
	}
}

func TestCycleScansKindsInPriorityOrder(t *testing.T) {
	repo := newClaimRepo()
	w := New(repo, testProcessor(t, repo), testLogger())

	w.cycle(context.Background())

	want := constants.JobKinds
	if len(repo.claimOrder) != len(want) {
		t.Fatalf("claim order = %v", repo.claimOrder)
	}
	for i, kind := range want {
		if repo.claimOrder[i] != kind {
			t.Errorf("claim %d = %s, want %s", i, repo.claimOrder[i], kind)
		}
	}
}

func TestCycleProcessesAtMostOneJobPerKind(t *testing.T) {
	repo := newClaimRepo()
	first := estimateJob()
	second := estimateJob()
	repo.enqueue(first)
	repo.enqueue(second)

	w := New(repo, testProcessor(t, repo), testLogger())

	w.cycle(context.Background())
	if _, ok := repo.completed[first.ID]; !ok {
		t.Fatal("first job was not completed")
	}
	if _, ok := repo.completed[second.ID]; ok {
		t.Fatal("second job of the same kind ran in the same cycle")
	}

	w.cycle(context.Background())
	out, ok := repo.completed[second.ID]
	if !ok {
		t.Fatal("second job was not completed on the next cycle")
	}
	if out.Transcription == nil || *out.Transcription != "hello" {
		t.Errorf("transcription = %v", out.Transcription)
	}
}

func TestCycleRunsOneJobOfEachKind(t *testing.T) {
	repo := newClaimRepo()
	receipt := &entity.Job{
		ID:     uuid.New(),
		Kind:   constants.JobKindReceipt,
		Status: constants.JobStatusPending,
		Inputs: entity.JobInputs{AudioPath: "/tmp/a.wav", ImagePath: "/tmp/a.jpg"},
	}
	estimate := estimateJob()
	repo.enqueue(receipt)
	repo.enqueue(estimate)

	w := New(repo, testProcessor(t, repo), testLogger())
	w.cycle(context.Background())

	if _, ok := repo.completed[receipt.ID]; !ok {
		t.Error("receipt was not completed")
	}
	if _, ok := repo.completed[estimate.ID]; !ok {
		t.Error("estimate was not completed")
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	repo := newClaimRepo()
	w := New(repo, testProcessor(t, repo), testLogger(),
		WithPollInterval(10*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

func TestWorkerIDOption(t *testing.T) {
	repo := newClaimRepo()
	w := New(repo, testProcessor(t, repo), testLogger(), WithID("worker-7"))
	if w.ID() != "worker-7" {
		t.Errorf("ID = %q", w.ID())
	}
}
