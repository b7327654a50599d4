package transcribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// stubRunner fakes the whisper binary by writing a transcript file where the
// -of argument points.
type stubRunner struct {
	text    string
	err     error
	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	if s.err != nil {
		return nil, []byte("engine exploded"), s.err
	}
	for i, a := range args {
		if a == "-of" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".txt", []byte(s.text), 0o644); err != nil {
				return nil, nil, err
			}
		}
	}
	return nil, nil, nil
}

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return path
}

func TestTranscribeTrimsTranscript(t *testing.T) {
	runner := &stubRunner{text: "  Fix the roof.\n"}
	w := NewWhisperWithRunner(Config{Binary: "whisper-cli", ModelPath: "/models/base.bin", Language: "en"}, runner, nil)

	got, err := w.Transcribe(context.Background(), writeAudio(t))
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if got != "Fix the roof." {
		t.Fatalf("text = %q, want trimmed transcript", got)
	}
	if runner.gotName != "whisper-cli" {
		t.Fatalf("binary = %q", runner.gotName)
	}
}

func TestTranscribeMissingAudio(t *testing.T) {
	w := NewWhisperWithRunner(Config{}, &stubRunner{text: "x"}, nil)

	_, err := w.Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.wav"))
	if !errors.Is(err, ErrAudioMissing) {
		t.Fatalf("err = %v, want ErrAudioMissing", err)
	}
}

func TestTranscribeEngineFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	w := NewWhisperWithRunner(Config{}, runner, nil)

	_, err := w.Transcribe(context.Background(), writeAudio(t))
	if err == nil {
		t.Fatal("expected error from failing engine")
	}
	if errors.Is(err, ErrAudioMissing) {
		t.Fatal("engine failure must not be reported as missing audio")
	}
}

func TestBuildWhisperArgs(t *testing.T) {
	args := buildWhisperArgs(Config{ModelPath: "/m/base.bin", Language: "en"}, "/a/memo.wav", "/tmp/out")
	want := map[string]string{"-f": "/a/memo.wav", "-of": "/tmp/out", "-m": "/m/base.bin", "-l": "en"}
	for flag, val := range want {
		found := false
		for i, a := range args {
			if a == flag && i+1 < len(args) && args[i+1] == val {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("args %v missing %s %s", args, flag, val)
		}
	}
}
