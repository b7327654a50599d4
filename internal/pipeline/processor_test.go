package pipeline

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
	"github.com/fieldvoice/backoffice/internal/tasks"
	"github.com/fieldvoice/backoffice/internal/transcribe"
)

type fakeRepo struct {
	completed map[uuid.UUID]entity.JobOutputs
	failed    map[uuid.UUID]string
	latest    string
	latestErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		completed: map[uuid.UUID]entity.JobOutputs{},
		failed:    map[uuid.UUID]string{},
	}
}

func (r *fakeRepo) Create(context.Context, constants.JobKind, entity.JobInputs) (*entity.Job, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeRepo) ClaimNextPending(context.Context, constants.JobKind, string) (*entity.Job, error) {
	return nil, nil
}

func (r *fakeRepo) MarkComplete(ctx context.Context, id uuid.UUID, outputs entity.JobOutputs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.completed[id] = outputs
	return nil
}

func (r *fakeRepo) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.failed[id] = message
	return nil
}

func (r *fakeRepo) GetByID(context.Context, uuid.UUID) (*entity.Job, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeRepo) LatestTranscriptForTarget(context.Context, string, string) (string, error) {
	return r.latest, r.latestErr
}

func (r *fakeRepo) ListFinished(context.Context, int) ([]*entity.Job, error) { return nil, nil }

func (r *fakeRepo) ListStale(context.Context, time.Duration) ([]*entity.Job, error) {
	return nil, nil
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (t *fakeTranscriber) Transcribe(context.Context, string) (string, error) {
	t.calls++
	return t.text, t.err
}

type fakeExtractor struct {
	names   []string
	err     error
	lastReq tasks.Request
}

func (e *fakeExtractor) ExtractTasks(_ context.Context, req tasks.Request) ([]string, error) {
	e.lastReq = req
	return e.names, e.err
}

type fakeRenderer struct {
	path    string
	err     error
	lastReq document.RenderRequest
}

func (r *fakeRenderer) RenderReceipt(_ context.Context, req document.RenderRequest) (string, error) {
	r.lastReq = req
	return r.path, r.err
}

type fakeVault struct {
	context     string
	summaryPath string
	err         error
}

func (v *fakeVault) Context(string, string) string { return v.context }

func (v *fakeVault) WriteEstimate(string, string, string, time.Time, string, []string) (string, error) {
	return v.summaryPath, v.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLock(t *testing.T) *enginelock.Lock {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.lock")
	return enginelock.New(path, testLogger(),
		enginelock.WithAcquireTimeout(200*time.Millisecond),
		enginelock.WithRetryDelay(10*time.Millisecond))
}

func testJob(kind constants.JobKind) *entity.Job {
	return &entity.Job{
		ID:     uuid.New(),
		Kind:   kind,
		Status: constants.JobStatusProcessing,
		Inputs: entity.JobInputs{
			CompanyToken: "acme",
			TargetID:     "kitchen-remodel",
			AudioPath:    "/tmp/note.wav",
			ImagePath:    "/tmp/receipts/store.jpg",
		},
	}
}

func TestProcessReceiptHappyPath(t *testing.T) {
	repo := newFakeRepo()
	renderer := &fakeRenderer{path: "/tmp/receipts/store.pdf"}
	p := NewProcessor(repo, testLock(t), &fakeTranscriber{text: "lumber 84.10"}, nil, renderer, nil, testLogger())

	job := testJob(constants.JobKindReceipt)
	if err := p.Process(context.Background(), job); err != nil {
		t.Fatalf("Process: %v", err)
	}

	out, ok := repo.completed[job.ID]
	if !ok {
		t.Fatal("job was not completed")
	}
	if out.Transcription == nil || *out.Transcription != "lumber 84.10" {
		t.Errorf("transcription = %v", out.Transcription)
	}
	if out.DocumentPath == nil || *out.DocumentPath != "/tmp/receipts/store.pdf" {
		t.Errorf("document path = %v", out.DocumentPath)
	}
	if renderer.lastReq.OutDir != "/tmp/receipts" {
		t.Errorf("OutDir = %q, want image directory", renderer.lastReq.OutDir)
	}
}

func TestProcessReceiptMissingAudioFailsJob(t *testing.T) {
	repo := newFakeRepo()
	tr := &fakeTranscriber{err: transcribe.ErrAudioMissing}
	p := NewProcessor(repo, testLock(t), tr, nil, &fakeRenderer{}, nil, testLogger())

	job := testJob(constants.JobKindReceipt)
	if err := p.Process(context.Background(), job); err == nil {
		t.Fatal("expected error")
	}

	if msg := repo.failed[job.ID]; msg != "audio file missing or unreadable" {
		t.Errorf("error message = %q", msg)
	}
	if _, ok := repo.completed[job.ID]; ok {
		t.Error("failed job must not also complete")
	}
}

func TestProcessReceiptRenderFailureFailsJob(t *testing.T) {
	repo := newFakeRepo()
	renderer := &fakeRenderer{err: document.ErrImageMissing}
	p := NewProcessor(repo, testLock(t), &fakeTranscriber{text: "x"}, nil, renderer, nil, testLogger())

	job := testJob(constants.JobKindReceipt)
	if err := p.Process(context.Background(), job); err == nil {
		t.Fatal("expected error")
	}
	if msg := repo.failed[job.ID]; msg != "receipt image missing or unreadable" {
		t.Errorf("error message = %q", msg)
	}
}

func TestProcessEstimateRecordsTasksAndSummary(t *testing.T) {
	repo := newFakeRepo()
	ex := &fakeExtractor{names: []string{"demo kitchen", "install cabinets"}}
	vault := &fakeVault{context: "## prior work", summaryPath: "/vault/acme/_summary.md"}
	p := NewProcessor(repo, testLock(t), &fakeTranscriber{text: "tear out the old cabinets"}, ex, nil, vault, testLogger())

	job := testJob(constants.JobKindEstimate)
	if err := p.Process(context.Background(), job); err != nil {
		t.Fatalf("Process: %v", err)
	}

	out := repo.completed[job.ID]
	if out.SummaryPath == nil || *out.SummaryPath != "/vault/acme/_summary.md" {
		t.Errorf("summary path = %v", out.SummaryPath)
	}
	if ex.lastReq.JobName != "kitchen-remodel" {
		t.Errorf("JobName = %q", ex.lastReq.JobName)
	}
	if ex.lastReq.VaultContext != "## prior work" {
		t.Errorf("VaultContext = %q", ex.lastReq.VaultContext)
	}
}

func TestProcessEstimateExtractionFailureStillCompletes(t *testing.T) {
	repo := newFakeRepo()
	ex := &fakeExtractor{err: errors.New("ollama is down")}
	p := NewProcessor(repo, testLock(t), &fakeTranscriber{text: "some work"}, ex, nil, &fakeVault{}, testLogger())

	job := testJob(constants.JobKindEstimate)
	if err := p.Process(context.Background(), job); err != nil {
		t.Fatalf("Process: %v", err)
	}

	out, ok := repo.completed[job.ID]
	if !ok {
		t.Fatal("job must complete despite extraction failure")
	}
	if out.Transcription == nil || *out.Transcription != "some work" {
		t.Errorf("transcription = %v", out.Transcription)
	}
	if out.SummaryPath != nil {
		t.Errorf("summary path should be absent, got %q", *out.SummaryPath)
	}
	if _, failed := repo.failed[job.ID]; failed {
		t.Error("extraction failure must never fail the job")
	}
}

func TestProcessEstimateWithoutExtractorCompletes(t *testing.T) {
	repo := newFakeRepo()
	p := NewProcessor(repo, testLock(t), &fakeTranscriber{text: "bare"}, nil, nil, nil, testLogger())

	job := testJob(constants.JobKindEstimate)
	if err := p.Process(context.Background(), job); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if _, ok := repo.completed[job.ID]; !ok {
		t.Fatal("job was not completed")
	}
}

func TestProcessAppendMergesLatestTranscript(t *testing.T) {
	repo := newFakeRepo()
	repo.latest = "first visit notes"
	p := NewProcessor(repo, testLock(t), &fakeTranscriber{text: "  second visit notes  "}, nil, nil, nil, testLogger())

	job := testJob(constants.JobKindEstimateAppend)
	if err := p.Process(context.Background(), job); err != nil {
		t.Fatalf("Process: %v", err)
	}

	out := repo.completed[job.ID]
	if out.Transcription == nil || *out.Transcription != "first visit notes second visit notes" {
		t.Errorf("merged transcription = %v", out.Transcription)
	}
}

func TestProcessAppendWithoutPriorTranscript(t *testing.T) {
	repo := newFakeRepo()
	p := NewProcessor(repo, testLock(t), &fakeTranscriber{text: "fresh notes"}, nil, nil, nil, testLogger())

	job := testJob(constants.JobKindEstimateAppend)
	if err := p.Process(context.Background(), job); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out := repo.completed[job.ID]; out.Transcription == nil || *out.Transcription != "fresh notes" {
		t.Errorf("transcription = %v", out.Transcription)
	}
}

func TestTranscribeLockedRetriesThenFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.lock")
	holder := enginelock.New(path, testLogger())
	handle, err := holder.Acquire(context.Background())
	if err != nil {
		t.Fatalf("holder acquire: %v", err)
	}
	defer handle.Release()

	contender := enginelock.New(path, testLogger(),
		enginelock.WithAcquireTimeout(50*time.Millisecond),
		enginelock.WithRetryDelay(5*time.Millisecond))

	repo := newFakeRepo()
	tr := &fakeTranscriber{text: "never reached"}
	p := NewProcessor(repo, contender, tr, nil, nil, nil, testLogger())
	p.EngineMaxAttempts = 2

	job := testJob(constants.JobKindEstimate)
	if err := p.Process(context.Background(), job); err == nil {
		t.Fatal("expected error while lock is held elsewhere")
	}

	if tr.calls != 0 {
		t.Errorf("transcriber ran %d times without the lock", tr.calls)
	}
	if msg := repo.failed[job.ID]; msg != "transcription engine unavailable" {
		t.Errorf("error message = %q", msg)
	}
}

func TestLockReleasedAfterTranscription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.lock")
	lock := enginelock.New(path, testLogger(),
		enginelock.WithAcquireTimeout(time.Second),
		enginelock.WithRetryDelay(5*time.Millisecond))

	repo := newFakeRepo()
	p := NewProcessor(repo, lock, &fakeTranscriber{text: "a"}, nil, nil, nil, testLogger())

	if err := p.Process(context.Background(), testJob(constants.JobKindEstimate)); err != nil {
		t.Fatalf("first job: %v", err)
	}
	if err := p.Process(context.Background(), testJob(constants.JobKindEstimate)); err != nil {
		t.Fatalf("second job should reacquire the released lock: %v", err)
	}
}

type blockingTranscriber struct{}

func (blockingTranscriber) Transcribe(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestStageTimeoutStillFailsJob(t *testing.T) {
	repo := newFakeRepo()
	p := NewProcessor(repo, testLock(t), blockingTranscriber{}, nil, nil, nil, testLogger())

	job := testJob(constants.JobKindEstimate)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := p.Process(ctx, job); err == nil {
		t.Fatal("expected error after stage timeout")
	}

	msg, ok := repo.failed[job.ID]
	if !ok {
		t.Fatal("job left in processing after stage timeout")
	}
	if msg != "transcription failed" {
		t.Errorf("error message = %q", msg)
	}
	if _, completed := repo.completed[job.ID]; completed {
		t.Error("timed-out job must not complete")
	}
}

func TestFailureMessageUnknownStage(t *testing.T) {
	if got := failureMessage("transcription", errors.New("exit status 1")); got != "transcription failed" {
		t.Errorf("failureMessage = %q", got)
	}
}
