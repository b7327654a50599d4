package tasks

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestVaultWriteAndSummary(t *testing.T) {
	v := NewVault(t.TempDir())
	when := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	summaryPath, err := v.WriteEstimate("acme", "Smith Residence", "est-1", when, "Fix the roof.", []string{"Fix the roof"})
	if err != nil {
		t.Fatalf("write estimate: %v", err)
	}

	raw, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	s := string(raw)
	if !strings.Contains(s, "Smith Residence — Estimate Summary") {
		t.Fatalf("summary missing header: %q", s)
	}
	if !strings.Contains(s, "Fix the roof.") {
		t.Fatalf("summary missing transcription: %q", s)
	}

	// second estimate is appended to the rebuilt summary in date order
	_, err = v.WriteEstimate("acme", "Smith Residence", "est-2", when.AddDate(0, 0, 1), "Also replace gutters.", nil)
	if err != nil {
		t.Fatalf("write second estimate: %v", err)
	}
	raw, _ = os.ReadFile(summaryPath)
	s = string(raw)
	first := strings.Index(s, "Fix the roof.")
	second := strings.Index(s, "Also replace gutters.")
	if first < 0 || second < 0 || second < first {
		t.Fatalf("summary order wrong: %q", s)
	}

	if got := v.Context("acme", "Smith Residence"); got != s {
		t.Fatal("Context should return the summary contents")
	}
	if got := v.Context("acme", "Unknown Job"); got != "" {
		t.Fatalf("Context for unknown job = %q, want empty", got)
	}
}

func TestSafeName(t *testing.T) {
	cases := map[string]string{
		"Smith Residence":      "Smith_Residence",
		"Roof / Gutter #2!":    "Roof__Gutter_2",
		"  padded  ":           "padded",
		strings.Repeat("a", 80): strings.Repeat("a", 60),
	}
	for in, want := range cases {
		if got := safeName(in); got != want {
			t.Fatalf("safeName(%q) = %q, want %q", in, got, want)
		}
	}
}
