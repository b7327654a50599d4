package document

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRenderReceiptMissingImage(t *testing.T) {
	r := NewRenderer(nil)
	_, err := r.RenderReceipt(context.Background(), RenderRequest{
		ImagePath: filepath.Join(t.TempDir(), "nope.jpg"),
		OutDir:    t.TempDir(),
	})
	if !errors.Is(err, ErrImageMissing) {
		t.Fatalf("err = %v, want ErrImageMissing", err)
	}
}

func TestHeaderText(t *testing.T) {
	got := headerText(RenderRequest{
		CompanyName: "Acme Roofing",
		TargetID:    "sub-42",
		Timestamp:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	})
	for _, want := range []string{"Acme Roofing", "2026-03-14 09:30", "#sub-42"} {
		if !strings.Contains(got, want) {
			t.Fatalf("header %q missing %q", got, want)
		}
	}

	bare := headerText(RenderRequest{CompanyName: "Acme Roofing"})
	if bare != "Acme Roofing" {
		t.Fatalf("bare header = %q", bare)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four five", 9)
	want := "one two\nthree\nfour five"
	if got != want {
		t.Fatalf("wrap = %q, want %q", got, want)
	}

	// words longer than the width stay whole
	long := strings.Repeat("x", 30)
	if wrapText(long, 10) != long {
		t.Fatal("long word must not be truncated")
	}

	if wrapText("   ", 10) != "" {
		t.Fatal("blank input wraps to empty")
	}
}
