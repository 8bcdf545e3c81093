package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hatchdotlol/passcheck/pkg/metrics"
	"github.com/hatchdotlol/passcheck/pkg/strength"
)

const (
	DefaultQueueSize    = 256
	DefaultWriteTimeout = 5 * time.Second
)

// Recorder writes records to a Store in the background. Record never blocks
// and never reports store failures to the caller; a full queue drops the
// record. A nil *Recorder is a no-op.
type Recorder struct {
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan Record
	done   chan struct{}
}

type RecorderOption func(*Recorder)

func WithMetrics(m *metrics.Metrics) RecorderOption {
	return func(r *Recorder) { r.metrics = m }
}

func WithLogger(l *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithQueueSize(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.queue = make(chan Record, n)
		}
	}
}

func WithWriteTimeout(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder starts the background writer. Stop it with Close.
func NewRecorder(store Store, opts ...RecorderOption) (*Recorder, error) {
	if store == nil {
		return nil, ErrInvalidInput
	}

	r := &Recorder{
		store:   store,
		logger:  slog.Default(),
		timeout: DefaultWriteTimeout,
		now:     time.Now,
		queue:   make(chan Record, DefaultQueueSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	go r.run()
	return r, nil
}

// Record queues a masked record of a check. It reports whether the record
// was accepted.
func (r *Recorder) Record(password string, res strength.Result) bool {
	if r == nil {
		return false
	}

	rec, err := NewRecord(password, res, r.now())
	if err != nil {
		r.fail(err)
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return false
	}

	select {
	case r.queue <- rec:
		return true
	default:
		r.metrics.AuditDropped()
		r.logger.Warn("audit queue full, dropping record", "id", rec.ID)
		return false
	}
}

func (r *Recorder) Recent(ctx context.Context, limit int) ([]Record, error) {
	if r == nil {
		return nil, ErrInvalidInput
	}
	return r.store.Recent(ctx, ClampLimit(limit))
}

// Close stops accepting records and waits for queued ones to be written or
// for ctx to end.
func (r *Recorder) Close(ctx context.Context) error {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("draining audit queue: %w", ctx.Err())
	}
}

func (r *Recorder) run() {
	defer close(r.done)

	for rec := range r.queue {
		if err := r.write(rec); err != nil {
			r.fail(err)
			continue
		}
		r.metrics.AuditWritten()
	}
}

func (r *Recorder) write(rec Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("audit store panic: %v", p)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.store.Insert(ctx, rec); err != nil {
		return fmt.Errorf("writing audit record %s: %w", rec.ID, err)
	}
	return nil
}

func (r *Recorder) fail(err error) {
	r.metrics.AuditFailed()
	r.logger.Error("audit write failed", "err", err)
	sentry.CaptureException(err)
}
