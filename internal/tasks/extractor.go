// Package tasks extracts actionable task names from estimate transcriptions
// with a local LLM. Extraction is best-effort by contract: every failure here
// is reported to the caller, and the caller decides (it never fails the job).
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const systemPrompt = "You are a construction project task extractor. Given a voice memo " +
	"transcription from a job site estimate walkthrough, extract a list of discrete " +
	"actionable tasks that need to be performed. Return ONLY a JSON array of task name " +
	"strings. Each task should be concise (5-15 words). Do not include commentary."

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Request carries one transcription plus optional prior context for the prompt.
type Request struct {
	CompanyToken  string
	JobName       string
	Transcription string
	// VaultContext is the accumulated estimate summary for this job, "" when
	// none exists yet.
	VaultContext string
}

// Extractor talks to an Ollama-compatible /api/generate endpoint.
type Extractor struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Extractor{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// ExtractTasks returns the validated task names for one transcription.
func (e *Extractor) ExtractTasks(ctx context.Context, req Request) ([]string, error) {
	start := time.Now()
	e.logger.Info("tasks.extract.start",
		"model", e.cfg.Model,
		"company", req.CompanyToken,
		"job_name", req.JobName,
		"text_len", len(req.Transcription),
		"has_context", req.VaultContext != "",
	)

	body := map[string]any{
		"model":  e.cfg.Model,
		"prompt": buildPrompt(req),
		"system": systemPrompt,
		"stream": false,
	}

	endpoint := strings.TrimRight(e.cfg.BaseURL, "/") + "/api/generate"
	raw, _, err := sendJSON(ctx, e.client, endpoint, body, e.logger)
	if err != nil {
		e.logger.Warn("tasks.extract.http_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var gen struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, fmt.Errorf("decode ollama response: %w", err)
	}
	if strings.TrimSpace(gen.Response) == "" {
		return nil, fmt.Errorf("empty ollama response")
	}

	names, err := parseTaskArray(gen.Response)
	if err != nil {
		e.logger.Warn("tasks.extract.parse_error",
			"error", err,
			"response_head", head(gen.Response, 200),
		)
		return nil, err
	}

	e.logger.Info("tasks.extract.ok",
		"task_count", len(names),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return names, nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	if req.VaultContext != "" {
		fmt.Fprintf(&b, "Project context:\n%s\n\n", req.VaultContext)
	}
	fmt.Fprintf(&b, "New estimate transcription:\n%s\n", req.Transcription)
	b.WriteString("\nExtract the tasks as a JSON array:")
	return b.String()
}

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*?\]`)

// parseTaskArray accepts either a bare JSON array or one embedded in prose
// or a markdown fence, validates it, and returns the trimmed names.
func parseTaskArray(response string) ([]string, error) {
	candidates := []string{strings.TrimSpace(response)}
	if m := jsonArrayRe.FindString(response); m != "" {
		candidates = append(candidates, m)
	}

	schema := BuildTaskListJSONSchema()
	var lastErr error
	for _, c := range candidates {
		if err := ValidateJSONAgainstSchema(schema, []byte(c)); err != nil {
			lastErr = err
			continue
		}
		var names []string
		if err := json.Unmarshal([]byte(c), &names); err != nil {
			lastErr = err
			continue
		}
		out := make([]string, 0, len(names))
		for _, n := range names {
			if t := strings.TrimSpace(n); t != "" {
				out = append(out, t)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("no valid task array in response: %w", lastErr)
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
