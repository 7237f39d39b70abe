// Package sessionlog keeps the ordered history of completed sessions and
// persists it as a single blob.
package sessionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/repository"
)

// StorageKey is the well-known key the serialized history lives under.
const StorageKey = "completedSessions"

// Store is the blob storage the log reads and writes in full.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

type Log struct {
	store  Store
	key    string
	logger *slog.Logger

	// mu guards records, closed and the pending write. Snapshots are taken
	// while it is held, so the newest pending payload is always the newest
	// history. The writer never holds it across a store call.
	mu      sync.RWMutex
	records []model.SessionRecord
	closed  bool
	pending []byte
	waiters []chan error

	wake    chan struct{}
	stopped chan struct{}

	errMu   sync.Mutex
	lastErr error
	onError func(error)
}

type Option func(*Log)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) { l.logger = logger }
}

// WithErrorHandler registers a callback for asynchronous persist failures.
func WithErrorHandler(fn func(error)) Option {
	return func(l *Log) { l.onError = fn }
}

func WithKey(key string) Option {
	return func(l *Log) { l.key = key }
}

// Load reads the persisted history and starts the background writer.
// Missing, empty or undecodable history yields an empty log.
func Load(ctx context.Context, store Store, opts ...Option) *Log {
	l := &Log{
		store:   store,
		key:     StorageKey,
		logger:  slog.Default(),
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.records = l.loadAll(ctx)
	go l.run()
	return l
}

func (l *Log) loadAll(ctx context.Context) []model.SessionRecord {
	raw, err := l.store.Get(ctx, l.key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l.logger.Warn("session history unavailable, starting empty", "error", err)
		}
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	records, err := Decode(raw)
	if err != nil {
		l.logger.Warn("session history corrupt, starting empty", "error", err)
		return nil
	}
	return records
}

// Append adds a finished record and queues a persist of the whole history.
// The in-memory append always succeeds and never waits for the store; a
// snapshot not yet written is replaced by the newer one.
func (l *Log) Append(record model.SessionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
	payload, err := Encode(l.records)
	if err != nil {
		l.report(fmt.Errorf("encode session history: %w", err))
		return
	}
	if err := l.enqueueLocked(payload, nil); err != nil {
		l.report(fmt.Errorf("persist session history: %w", err))
	}
}

// Clear empties the history and waits for the empty state to be written.
func (l *Log) Clear(ctx context.Context) error {
	done := make(chan error, 1)

	l.mu.Lock()
	l.records = nil
	payload, err := Encode(nil)
	if err == nil {
		err = l.enqueueLocked(payload, done)
	}
	l.mu.Unlock()
	if err != nil {
		return err
	}

	return wait(ctx, done)
}

// Flush waits until every snapshot taken before it is written and returns
// the last persist error, if any.
func (l *Log) Flush(ctx context.Context) error {
	done := make(chan error, 1)

	l.mu.Lock()
	err := l.enqueueLocked(nil, done)
	l.mu.Unlock()
	if err != nil {
		return l.LastError()
	}

	if err := wait(ctx, done); err != nil {
		return err
	}
	return l.LastError()
}

// Close drains pending writes and stops the writer.
func (l *Log) Close(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.wake)
	}
	l.mu.Unlock()

	select {
	case <-l.stopped:
	case <-ctx.Done():
		return ctx.Err()
	}
	return l.LastError()
}

// LastError is the outcome of the most recent persist attempt.
func (l *Log) LastError() error {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	return l.lastErr
}

// Records returns a copy of the history in completion order.
func (l *Log) Records() []model.SessionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.SessionRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

var errClosed = errors.New("session log closed")

// enqueueLocked replaces the pending snapshot with payload, when given, and
// registers done to receive the outcome of the next write.
func (l *Log) enqueueLocked(payload []byte, done chan error) error {
	if l.closed {
		return errClosed
	}
	if payload != nil {
		l.pending = payload
	}
	if done != nil {
		l.waiters = append(l.waiters, done)
	}
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

func (l *Log) run() {
	defer close(l.stopped)
	for range l.wake {
		l.drain()
	}
	l.drain()
}

func (l *Log) drain() {
	l.mu.Lock()
	payload, waiters := l.pending, l.waiters
	l.pending, l.waiters = nil, nil
	l.mu.Unlock()

	var err error
	if payload != nil {
		err = l.persist(payload)
	}
	for _, done := range waiters {
		done <- err
	}
}

func (l *Log) persist(payload []byte) error {
	err := l.store.Put(context.Background(), l.key, payload)
	if err != nil {
		err = fmt.Errorf("persist session history: %w", err)
		l.report(err)
		return err
	}
	l.errMu.Lock()
	l.lastErr = nil
	l.errMu.Unlock()
	return nil
}

func (l *Log) report(err error) {
	l.errMu.Lock()
	l.lastErr = err
	l.errMu.Unlock()

	l.logger.Error("session history not saved", "error", err)
	if l.onError != nil {
		l.onError(err)
	}
}

func wait(ctx context.Context, done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Encode serializes records for storage with timestamps in UTC.
func Encode(records []model.SessionRecord) ([]byte, error) {
	out := make([]model.SessionRecord, len(records))
	for i, r := range records {
		r.StartTime = r.StartTime.UTC()
		if r.EndTime != nil {
			end := r.EndTime.UTC()
			r.EndTime = &end
		}
		out[i] = r
	}
	return json.Marshal(out)
}

// Decode parses a serialized history.
func Decode(raw []byte) ([]model.SessionRecord, error) {
	var records []model.SessionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	for i, r := range records {
		if !r.SessionType.Valid() {
			return nil, fmt.Errorf("record %d: unknown session type %q", i, r.SessionType)
		}
	}
	return records, nil
}
