// Package document renders the combined receipt PDF: the photographed
// receipt as the page, with submission metadata and the voice-note
// transcription stamped onto it. Rendering is CPU-light and runs outside the
// engine lock.
package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrImageMissing marks a receipt image that does not exist or cannot be read.
var ErrImageMissing = errors.New("receipt image missing or unreadable")

// RenderRequest carries everything stamped into one receipt document.
type RenderRequest struct {
	ImagePath     string
	Transcription string
	CompanyName   string
	TargetID      string
	Timestamp     time.Time
	// OutDir receives the generated PDF, named after the image stem.
	OutDir string
}

type Renderer struct {
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// RenderReceipt produces the PDF and returns its path.
func (r *Renderer) RenderReceipt(ctx context.Context, req RenderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if st, err := os.Stat(req.ImagePath); err != nil || st.IsDir() {
		r.logger.Error("render input missing", "image_path", req.ImagePath)
		return "", ErrImageMissing
	}
	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create document directory: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(req.ImagePath), filepath.Ext(req.ImagePath))
	outPath := filepath.Join(req.OutDir, stem+".pdf")
	tmpPath := outPath + ".tmp"
	defer func() { _ = os.Remove(tmpPath) }()

	start := time.Now()
	if err := api.ImportImagesFile([]string{req.ImagePath}, tmpPath, nil, nil); err != nil {
		return "", fmt.Errorf("import receipt image: %w", err)
	}

	header := headerText(req)
	if err := api.AddTextWatermarksFile(tmpPath, tmpPath, nil, true, header,
		"points:12, scale:1 abs, rot:0, pos:tc, off:0 -14", nil); err != nil {
		return "", fmt.Errorf("stamp header: %w", err)
	}

	if body := strings.TrimSpace(req.Transcription); body != "" {
		wrapped := wrapText(body, 90)
		if err := api.AddTextWatermarksFile(tmpPath, tmpPath, nil, true, wrapped,
			"points:9, scale:1 abs, rot:0, pos:bc, off:0 20", nil); err != nil {
			return "", fmt.Errorf("stamp transcription: %w", err)
		}
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return "", fmt.Errorf("finalize document: %w", err)
	}

	r.logger.Info("document rendered",
		"path", outPath,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return outPath, nil
}

func headerText(req RenderRequest) string {
	parts := []string{req.CompanyName}
	if !req.Timestamp.IsZero() {
		parts = append(parts, req.Timestamp.Format("2006-01-02 15:04"))
	}
	if req.TargetID != "" {
		parts = append(parts, "#"+req.TargetID)
	}
	return strings.Join(parts, "  |  ")
}

// wrapText breaks long transcriptions into stampable lines. Words longer
// than the width are kept whole, never truncated.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
