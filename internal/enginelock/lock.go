// Package enginelock serializes access to the shared inference engine across
// worker processes. The engine is memory-bound; loading a second model
// instance on the same host is not survivable, so exclusivity is enforced
// with a filesystem advisory lock rather than anything in-process.
package enginelock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrTimeout is returned when the lock could not be acquired within the
// configured bound. Callers retry inline; they do not fail the job on the
// first timeout.
var ErrTimeout = errors.New("engine lock acquisition timed out")

// Lock is a named cross-process mutex over a lock file. The zero value is
// not usable; construct with New.
type Lock struct {
	path           string
	acquireTimeout time.Duration
	retryDelay     time.Duration
	logger         *slog.Logger
}

// Handle represents a held lock. Release exactly once.
type Handle struct {
	fl       *flock.Flock
	logger   *slog.Logger
	acquired time.Time
}

type Option func(*Lock)

func WithAcquireTimeout(d time.Duration) Option {
	return func(l *Lock) {
		if d > 0 {
			l.acquireTimeout = d
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(l *Lock) {
		if d > 0 {
			l.retryDelay = d
		}
	}
}

func New(path string, logger *slog.Logger, opts ...Option) *Lock {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Lock{
		path:           path,
		acquireTimeout: 90 * time.Second,
		retryDelay:     250 * time.Millisecond,
		logger:         logger,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Acquire blocks until the lock is held, the acquire timeout elapses, or ctx
// is cancelled. The critical section must stay narrow: callers wrap only the
// inference call, never rendering or database writes.
func (l *Lock) Acquire(ctx context.Context) (*Handle, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fl := flock.New(l.path)
	start := time.Now()

	acquireCtx, cancel := context.WithTimeout(ctx, l.acquireTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(acquireCtx, l.retryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			l.logger.Warn("engine lock acquisition timed out",
				"path", l.path,
				"waited_ms", time.Since(start).Milliseconds(),
			)
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("acquire engine lock: %w", err)
	}
	if !locked {
		return nil, ErrTimeout
	}

	l.logger.Debug("engine lock acquired",
		"path", l.path,
		"waited_ms", time.Since(start).Milliseconds(),
	)
	return &Handle{fl: fl, logger: l.logger, acquired: time.Now()}, nil
}

// Release unlocks the file. Safe to call on a nil handle.
func (h *Handle) Release() {
	if h == nil || h.fl == nil {
		return
	}
	held := time.Since(h.acquired)
	if err := h.fl.Unlock(); err != nil {
		h.logger.Error("engine lock release failed", "error", err)
		return
	}
	h.fl = nil
	h.logger.Debug("engine lock released", "held_ms", held.Milliseconds())
}
