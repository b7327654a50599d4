package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Vault maintains the per-company, per-job markdown files that accumulate
// estimate history. The rebuilt summary doubles as LLM context for later
// extractions.
type Vault struct {
	root string
}

func NewVault(root string) *Vault {
	return &Vault{root: root}
}

var unsafeNameRe = regexp.MustCompile(`[^\w\s-]`)

// safeName converts free text to a filesystem-safe directory name.
func safeName(text string) string {
	s := unsafeNameRe.ReplaceAllString(text, "")
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}

func (v *Vault) jobDir(companyToken, jobName string) (string, error) {
	d := filepath.Join(v.root, companyToken, safeName(jobName))
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", fmt.Errorf("create vault directory: %w", err)
	}
	return d, nil
}

// WriteEstimate writes one estimate markdown file and rebuilds the job
// summary. Returns the summary path, plus details of tasks when provided.
func (v *Vault) WriteEstimate(companyToken, jobName, estimateID string, when time.Time, transcription string, taskNames []string) (string, error) {
	dir, err := v.jobDir(companyToken, jobName)
	if err != nil {
		return "", err
	}

	dateStr := when.Format("2006-01-02")
	filename := fmt.Sprintf("estimate_%s_%s.md", dateStr, estimateID)

	var b strings.Builder
	fmt.Fprintf(&b, "# Estimate %s — %s\n", estimateID, jobName)
	fmt.Fprintf(&b, "**Date:** %s\n\n", dateStr)
	b.WriteString("## Transcription\n")
	if transcription == "" {
		b.WriteString("(no audio)\n")
	} else {
		b.WriteString(transcription + "\n")
	}
	if len(taskNames) > 0 {
		b.WriteString("\n## Extracted Tasks\n")
		for _, n := range taskNames {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write estimate markdown: %w", err)
	}

	return v.rebuildSummary(dir, jobName)
}

// Context returns the job summary markdown for LLM context, "" when absent.
func (v *Vault) Context(companyToken, jobName string) string {
	dir := filepath.Join(v.root, companyToken, safeName(jobName))
	raw, err := os.ReadFile(filepath.Join(dir, "_summary.md"))
	if err != nil {
		return ""
	}
	return string(raw)
}

// rebuildSummary regenerates _summary.md from every estimate file in the dir.
func (v *Vault) rebuildSummary(dir, jobName string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read vault directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "estimate_") && strings.HasSuffix(e.Name(), ".md") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s — Estimate Summary\n\n", jobName)
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("read estimate markdown: %w", err)
		}
		b.Write(raw)
		b.WriteString("\n---\n\n")
	}

	summaryPath := filepath.Join(dir, "_summary.md")
	if err := os.WriteFile(summaryPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write summary markdown: %w", err)
	}
	return summaryPath, nil
}
