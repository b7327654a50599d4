package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/gen/ent"
	"github.com/fieldvoice/backoffice/gen/ent/enttest"
	_ "github.com/fieldvoice/backoffice/gen/ent/runtime"
	"github.com/fieldvoice/backoffice/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedJob(t *testing.T, client *ent.Client, kind constants.JobKind, createdAt time.Time) *ent.Job {
	t.Helper()
	row, err := client.Job.Create().
		SetKind(string(kind)).
		SetStatus(string(constants.JobStatusPending)).
		SetCompanyToken("acme").
		SetTargetID("est-7").
		SetAudioPath("/data/audio/memo.m4a").
		SetCreatedAt(createdAt).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return row
}

func TestClaimNextPendingFIFO(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	oldest := seedJob(t, client, constants.JobKindEstimate, base)
	middle := seedJob(t, client, constants.JobKindEstimate, base.Add(time.Minute))
	newest := seedJob(t, client, constants.JobKindEstimate, base.Add(2*time.Minute))

	want := []interface{}{oldest.ID, middle.ID, newest.ID}
	for i, id := range want {
		got, err := repo.ClaimNextPending(ctx, constants.JobKindEstimate, "worker-a")
		if err != nil {
			t.Fatalf("claim %d: %v", i, err)
		}
		if got == nil {
			t.Fatalf("claim %d: expected a job", i)
		}
		if got.ID != id {
			t.Fatalf("claim %d: got %s, want %s", i, got.ID, id)
		}
		if got.Status != constants.JobStatusProcessing {
			t.Fatalf("claim %d: status = %s, want processing", i, got.Status)
		}
		if got.ClaimedAt == nil || got.ClaimedBy == nil || *got.ClaimedBy != "worker-a" {
			t.Fatalf("claim %d: claim stamps not set: %+v", i, got)
		}
	}

	got, err := repo.ClaimNextPending(ctx, constants.JobKindEstimate, "worker-a")
	if err != nil {
		t.Fatalf("claim on drained queue: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on drained queue, got %s", got.ID)
	}
}

func TestClaimIsKindScoped(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)
	ctx := context.Background()

	seedJob(t, client, constants.JobKindEstimate, time.Now().Add(-time.Minute))

	got, err := repo.ClaimNextPending(ctx, constants.JobKindReceipt, "worker-a")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if got != nil {
		t.Fatalf("receipt claim should not see estimate jobs, got %s", got.ID)
	}
}

func TestClaimLoserGetsNil(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)
	ctx := context.Background()

	seedJob(t, client, constants.JobKindReceipt, time.Now().Add(-time.Minute))

	winner, err := repo.ClaimNextPending(ctx, constants.JobKindReceipt, "worker-a")
	if err != nil || winner == nil {
		t.Fatalf("first claim: job=%v err=%v", winner, err)
	}

	loser, err := repo.ClaimNextPending(ctx, constants.JobKindReceipt, "worker-b")
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if loser != nil {
		t.Fatalf("second claim should lose, got %s", loser.ID)
	}

	// claimed_by is written exactly once and never overwritten
	row, err := repo.GetByID(ctx, winner.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.ClaimedBy == nil || *row.ClaimedBy != "worker-a" {
		t.Fatalf("claimed_by = %v, want worker-a", row.ClaimedBy)
	}
}

func TestFinalizersRequireProcessing(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)
	ctx := context.Background()

	pendingRow := seedJob(t, client, constants.JobKindEstimate, time.Now().Add(-time.Minute))

	text := "transcribed"
	if err := repo.MarkComplete(ctx, pendingRow.ID, entity.JobOutputs{Transcription: &text}); !errors.Is(err, ErrNotProcessing) {
		t.Fatalf("complete on pending job: err = %v, want ErrNotProcessing", err)
	}

	claimed, err := repo.ClaimNextPending(ctx, constants.JobKindEstimate, "worker-a")
	if err != nil || claimed == nil {
		t.Fatalf("claim: job=%v err=%v", claimed, err)
	}
	if err := repo.MarkComplete(ctx, claimed.ID, entity.JobOutputs{Transcription: &text}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// No transition leaves a terminal state.
	if err := repo.MarkComplete(ctx, claimed.ID, entity.JobOutputs{}); !errors.Is(err, ErrNotProcessing) {
		t.Fatalf("double complete: err = %v, want ErrNotProcessing", err)
	}
	if err := repo.MarkError(ctx, claimed.ID, "boom"); !errors.Is(err, ErrNotProcessing) {
		t.Fatalf("error after complete: err = %v, want ErrNotProcessing", err)
	}

	row, err := repo.GetByID(ctx, claimed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Status != constants.JobStatusComplete {
		t.Fatalf("status = %s, want complete", row.Status)
	}
	if row.Outputs.Transcription == nil || *row.Outputs.Transcription != text {
		t.Fatalf("transcription = %v, want %q", row.Outputs.Transcription, text)
	}
	if row.ErrorMessage != nil {
		t.Fatalf("error_message = %v, want nil", row.ErrorMessage)
	}
}

func TestMarkErrorRecordsMessage(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)
	ctx := context.Background()

	seedJob(t, client, constants.JobKindReceipt, time.Now().Add(-time.Minute))
	claimed, err := repo.ClaimNextPending(ctx, constants.JobKindReceipt, "worker-a")
	if err != nil || claimed == nil {
		t.Fatalf("claim: job=%v err=%v", claimed, err)
	}

	if err := repo.MarkError(ctx, claimed.ID, "audio file missing or unreadable"); err != nil {
		t.Fatalf("mark error: %v", err)
	}

	row, err := repo.GetByID(ctx, claimed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Status != constants.JobStatusError {
		t.Fatalf("status = %s, want error", row.Status)
	}
	if row.ErrorMessage == nil || *row.ErrorMessage == "" {
		t.Fatal("error_message should be set")
	}
	if row.CompletedAt == nil {
		t.Fatal("completed_at should be stamped on error")
	}
}

func TestResubmissionLeavesFailedJobUntouched(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)
	ctx := context.Background()

	inputs := entity.JobInputs{
		CompanyToken: "acme",
		TargetID:     "sub-42",
		AudioPath:    "/data/audio/memo.m4a",
		ImagePath:    "/data/img/receipt.jpg",
	}

	first, err := repo.Create(ctx, constants.JobKindReceipt, inputs)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	claimed, err := repo.ClaimNextPending(ctx, constants.JobKindReceipt, "worker-a")
	if err != nil || claimed == nil {
		t.Fatalf("claim: job=%v err=%v", claimed, err)
	}
	if err := repo.MarkError(ctx, first.ID, "transcription engine unavailable"); err != nil {
		t.Fatalf("mark error: %v", err)
	}

	second, err := repo.Create(ctx, constants.JobKindReceipt, inputs)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("resubmission must create a new job id")
	}

	row, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Status != constants.JobStatusError {
		t.Fatalf("original status = %s, want error", row.Status)
	}
	if row.ErrorMessage == nil || *row.ErrorMessage != "transcription engine unavailable" {
		t.Fatalf("original error_message = %v, want preserved", row.ErrorMessage)
	}
}

func TestLatestTranscriptForTarget(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)
	ctx := context.Background()

	got, err := repo.LatestTranscriptForTarget(ctx, "acme", "est-7")
	if err != nil {
		t.Fatalf("empty lookup: %v", err)
	}
	if got != "" {
		t.Fatalf("empty lookup = %q, want empty", got)
	}

	seedJob(t, client, constants.JobKindEstimate, time.Now().Add(-time.Minute))
	claimed, err := repo.ClaimNextPending(ctx, constants.JobKindEstimate, "worker-a")
	if err != nil || claimed == nil {
		t.Fatalf("claim: job=%v err=%v", claimed, err)
	}
	text := "Fix the roof."
	if err := repo.MarkComplete(ctx, claimed.ID, entity.JobOutputs{Transcription: &text}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, err = repo.LatestTranscriptForTarget(ctx, "acme", "est-7")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != text {
		t.Fatalf("lookup = %q, want %q", got, text)
	}
}

func TestGetByIDUnknownReturnsNil(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, nil)

	got, err := repo.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown id, got %v", got.ID)
	}
}
