package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/fieldvoice/backoffice/internal/repository"
)

// Service is a tiny façade over the job repository that produces XLSX bytes
// for operator reports.
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

// ExportJobsXLSX returns an XLSX workbook (as bytes) listing finished jobs,
// newest first. limit <= 0 means no limit.
func (s *Service) ExportJobsXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobRepo.ListFinished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Submitted",
		"Completed",
		"Kind",
		"Status",
		"Company",
		"Target",
		"Worker",
		"Transcription",
		"Document Path",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, j := range jobs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, j.CreatedAt.Format("2006-01-02 15:04:05"))
		write(2, formatTimePtr(j.CompletedAt))
		write(3, string(j.Kind))
		write(4, string(j.Status))
		write(5, j.Inputs.CompanyToken)
		write(6, j.Inputs.TargetID)
		write(7, strValue(j.ClaimedBy))
		write(8, truncate(strValue(j.Outputs.Transcription), 140))
		write(9, strValue(j.Outputs.DocumentPath))
		write(10, strValue(j.ErrorMessage))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 20) // timestamps
	_ = f.SetColWidth(sheet, "C", "D", 14) // kind, status
	_ = f.SetColWidth(sheet, "E", "F", 22) // company, target
	_ = f.SetColWidth(sheet, "G", "G", 28) // worker
	_ = f.SetColWidth(sheet, "H", "H", 48) // transcription
	_ = f.SetColWidth(sheet, "I", "I", 60) // path
	_ = f.SetColWidth(sheet, "J", "J", 36) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(jobs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
