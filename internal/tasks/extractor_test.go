package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fakeOllama(t *testing.T, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["stream"] != false {
			t.Error("stream must be disabled")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"response": response})
	}))
}

func TestExtractTasksDirectArray(t *testing.T) {
	srv := fakeOllama(t, `["Replace gutters", " Patch drywall in kitchen "]`)
	defer srv.Close()

	e := NewExtractor(Config{BaseURL: srv.URL, Model: "llama3.1", Timeout: 5 * time.Second}, nil)
	got, err := e.ExtractTasks(context.Background(), Request{
		CompanyToken:  "acme",
		JobName:       "Smith Residence",
		Transcription: "We need new gutters and the kitchen drywall patched.",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"Replace gutters", "Patch drywall in kitchen"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("task %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractTasksFromProse(t *testing.T) {
	srv := fakeOllama(t, "Here are the tasks:\n```json\n[\"Fix the roof\"]\n```\nDone.")
	defer srv.Close()

	e := NewExtractor(Config{BaseURL: srv.URL, Model: "llama3.1"}, nil)
	got, err := e.ExtractTasks(context.Background(), Request{Transcription: "roof is leaking"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != 1 || got[0] != "Fix the roof" {
		t.Fatalf("got %v, want [Fix the roof]", got)
	}
}

func TestExtractTasksRejectsNonArray(t *testing.T) {
	srv := fakeOllama(t, `{"tasks": "not an array"}`)
	defer srv.Close()

	e := NewExtractor(Config{BaseURL: srv.URL, Model: "llama3.1"}, nil)
	if _, err := e.ExtractTasks(context.Background(), Request{Transcription: "x"}); err == nil {
		t.Fatal("expected parse error for non-array response")
	}
}

func TestExtractTasksServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewExtractor(Config{BaseURL: srv.URL, Model: "llama3.1"}, nil)
	if _, err := e.ExtractTasks(context.Background(), Request{Transcription: "x"}); err == nil {
		t.Fatal("expected error on 5xx")
	}
}

func TestBuildPromptIncludesContext(t *testing.T) {
	p := buildPrompt(Request{Transcription: "new work", VaultContext: "old summary"})
	if !strings.Contains(p, "Project context:\nold summary") {
		t.Fatalf("prompt missing context: %q", p)
	}
	if !strings.Contains(p, "New estimate transcription:\nnew work") {
		t.Fatalf("prompt missing transcription: %q", p)
	}

	p = buildPrompt(Request{Transcription: "new work"})
	if strings.Contains(p, "Project context") {
		t.Fatalf("prompt should omit empty context: %q", p)
	}
}

func TestParseTaskArrayFiltersBlanks(t *testing.T) {
	got, err := parseTaskArray(`["a", "  ", "b"]`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v, want [a b]", got)
	}
}
