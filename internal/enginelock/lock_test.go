package enginelock

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func testLock(t *testing.T, opts ...Option) *Lock {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.lock")
	return New(path, nil, opts...)
}

func TestAcquireRelease(t *testing.T) {
	l := testLock(t)

	h, err := l.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	h.Release()

	// reacquirable after release
	h2, err := l.Acquire(context.Background())
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	h2.Release()
}

func TestAcquireTimesOutWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.lock")
	holder := New(path, nil)
	contender := New(path, nil,
		WithAcquireTimeout(150*time.Millisecond),
		WithRetryDelay(20*time.Millisecond),
	)

	h, err := holder.Acquire(context.Background())
	if err != nil {
		t.Fatalf("holder acquire: %v", err)
	}
	defer h.Release()

	start := time.Now()
	_, err = contender.Acquire(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("contender err = %v, want ErrTimeout", err)
	}
	if waited := time.Since(start); waited < 100*time.Millisecond {
		t.Fatalf("contender gave up after %v, should wait out the timeout", waited)
	}
}

func TestAcquireAfterHolderReleases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.lock")
	holder := New(path, nil)
	contender := New(path, nil,
		WithAcquireTimeout(2*time.Second),
		WithRetryDelay(10*time.Millisecond),
	)

	h, err := holder.Acquire(context.Background())
	if err != nil {
		t.Fatalf("holder acquire: %v", err)
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		h.Release()
	}()

	h2, err := contender.Acquire(context.Background())
	if err != nil {
		t.Fatalf("contender acquire: %v", err)
	}
	h2.Release()
}

func TestReleaseNilHandle(t *testing.T) {
	var h *Handle
	h.Release() // must not panic

	l := testLock(t)
	h2, err := l.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	h2.Release()
	h2.Release() // double release is a no-op
}
