// Package transcribe adapts the whisper.cpp CLI into the pipeline's
// transcription stage. One model instance fits in memory per host, which is
// why callers hold the engine lock around Transcribe.
package transcribe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrAudioMissing marks input audio that does not exist or cannot be read.
var ErrAudioMissing = errors.New("audio file missing or unreadable")

type Config struct {
	Binary    string
	ModelPath string
	Language  string
}

// Whisper shells out to whisper-cli and reads back the produced transcript.
type Whisper struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewWhisper(cfg Config, logger *slog.Logger) *Whisper {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Binary == "" {
		cfg.Binary = "whisper-cli"
	}
	return &Whisper{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewWhisperWithRunner is used by tests to stub the binary.
func NewWhisperWithRunner(cfg Config, r Runner, logger *slog.Logger) *Whisper {
	w := NewWhisper(cfg, logger)
	w.runner = r
	return w
}

// Transcribe runs the engine on one audio file and returns the trimmed text.
func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if st, err := os.Stat(audioPath); err != nil || st.IsDir() {
		w.logger.Error("transcribe input missing", "audio_path", audioPath)
		return "", ErrAudioMissing
	}

	outDir, err := os.MkdirTemp("", "backoffice-transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create transcript workspace: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(outDir); err != nil {
			w.logger.Warn("transcript workspace cleanup failed", "dir", outDir, "error", err)
		}
	}()

	outBase := filepath.Join(outDir, "transcript")
	args := buildWhisperArgs(w.cfg, audioPath, outBase)

	if _, _, err := w.runner.Run(ctx, w.cfg.Binary, args...); err != nil {
		return "", fmt.Errorf("whisper run: %w", err)
	}

	raw, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("whisper produced no transcript: %w", err)
	}

	text := strings.TrimSpace(string(raw))
	w.logger.Info("transcription finished",
		"audio_path", audioPath,
		"text_len", len(text),
	)
	return text, nil
}

func buildWhisperArgs(cfg Config, audioPath, outBase string) []string {
	args := []string{
		"-f", audioPath,
		"-otxt",
		"-of", outBase,
		"--no-prints",
	}
	if cfg.ModelPath != "" {
		args = append(args, "-m", cfg.ModelPath)
	}
	if cfg.Language != "" {
		args = append(args, "-l", cfg.Language)
	}
	return args
}
