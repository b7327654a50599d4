package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/internal/entity"
)

type listRepo struct {
	finished []*entity.Job
	err      error
}

func (r *listRepo) Create(context.Context, constants.JobKind, entity.JobInputs) (*entity.Job, error) {
	return nil, errors.New("not implemented")
}

func (r *listRepo) ClaimNextPending(context.Context, constants.JobKind, string) (*entity.Job, error) {
	return nil, nil
}

func (r *listRepo) MarkComplete(context.Context, uuid.UUID, entity.JobOutputs) error { return nil }

func (r *listRepo) MarkError(context.Context, uuid.UUID, string) error { return nil }

func (r *listRepo) GetByID(context.Context, uuid.UUID) (*entity.Job, error) { return nil, nil }

func (r *listRepo) LatestTranscriptForTarget(context.Context, string, string) (string, error) {
	return "", nil
}

func (r *listRepo) ListFinished(context.Context, int) ([]*entity.Job, error) {
	return r.finished, r.err
}

func (r *listRepo) ListStale(context.Context, time.Duration) ([]*entity.Job, error) {
	return nil, nil
}

func TestExportJobsXLSX(t *testing.T) {
	text := "lumber and nails"
	doc := "/data/receipts/store.pdf"
	worker := "host-1234-abcd"
	done := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	errMsg := "audio file missing or unreadable"

	repo := &listRepo{finished: []*entity.Job{
		{
			ID:     uuid.New(),
			Kind:   constants.JobKindReceipt,
			Status: constants.JobStatusComplete,
			Inputs: entity.JobInputs{CompanyToken: "acme", TargetID: "r-101"},
			Outputs: entity.JobOutputs{
				Transcription: &text,
				DocumentPath:  &doc,
			},
			CreatedAt:   done.Add(-time.Minute),
			CompletedAt: &done,
			ClaimedBy:   &worker,
		},
		{
			ID:           uuid.New(),
			Kind:         constants.JobKindEstimate,
			Status:       constants.JobStatusError,
			Inputs:       entity.JobInputs{CompanyToken: "acme", TargetID: "e-7"},
			ErrorMessage: &errMsg,
			CreatedAt:    done,
		},
	}}

	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportJobsXLSX(context.Background(), 0)
	if err != nil {
		t.Fatalf("ExportJobsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Jobs")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Submitted" || rows[0][3] != "Status" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][2] != "receipt" || rows[1][8] != doc {
		t.Errorf("receipt row = %v", rows[1])
	}
	if rows[2][3] != "error" || rows[2][9] != errMsg {
		t.Errorf("error row = %v", rows[2])
	}
}

func TestExportJobsXLSXEmptyQueue(t *testing.T) {
	svc := NewService(&listRepo{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportJobsXLSX(context.Background(), 10)
	if err != nil {
		t.Fatalf("ExportJobsXLSX: %v", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Jobs")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays whole", "abc", 10, "abc"},
		{"ascii cut", "abcdef", 4, "abc…"},
		{"multibyte cut", "日本語のテキスト", 4, "日本語…"},
		{"exact length", "日本語", 3, "日本語"},
		{"width one", "日本語", 1, "日"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.n)
			if got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}
