// Package audit implements the best-effort activity recorder. Events are
// buffered on a channel and written by a single background worker so that a
// slow or failing audit write never delays an HTTP response.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"placement/internal/domain/entity"
	"placement/internal/domain/repository"
	"placement/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultBufferSize = 256
	appendTimeout     = 5 * time.Second
)

// Recorder queues activity records and persists them asynchronously.
// Record never blocks: when the buffer is full the event is dropped and
// counted. Append failures are logged and swallowed.
type Recorder struct {
	repo    repository.ActivityRepository
	logger  *slog.Logger
	ch      chan entity.ActivityRecord
	done    chan struct{}
	wg      sync.WaitGroup
	dropped atomic.Uint64
	closed  atomic.Bool
	once    sync.Once
}

// Params defines the dependencies for the Recorder, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Repo   repository.ActivityRepository
	Logger *slog.Logger
}

// NewRecorder starts the worker and registers a drain-on-shutdown hook.
func NewRecorder(params Params) service.ActivityRecorder {
	r := &Recorder{
		repo:   params.Repo,
		logger: params.Logger,
		ch:     make(chan entity.ActivityRecord, defaultBufferSize),
		done:   make(chan struct{}),
	}

	r.wg.Add(1)
	go r.run()

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			r.Close()

			return nil
		},
	})

	return r
}

// newRecorder is the lifecycle-free constructor used by tests.
func newRecorder(repo repository.ActivityRepository, logger *slog.Logger) *Recorder {
	r := &Recorder{
		repo:   repo,
		logger: logger,
		ch:     make(chan entity.ActivityRecord, defaultBufferSize),
		done:   make(chan struct{}),
	}

	r.wg.Add(1)
	go r.run()

	return r
}

// Record enqueues an activity event. It never blocks and never fails the
// caller; a full buffer drops the event.
func (r *Recorder) Record(_ context.Context, email string, role entity.Role, activity entity.Activity) {
	if r == nil || r.closed.Load() {
		return
	}

	record := entity.ActivityRecord{
		Email:     email,
		Role:      role,
		Activity:  activity,
		CreatedAt: time.Now(),
	}

	select {
	case r.ch <- record:
	case <-r.done:
	default:
		r.dropped.Add(1)
		r.logger.Warn("Activity buffer full, event dropped",
			slog.String("email", email),
			slog.String("role", role.String()),
			slog.String("activity", activity.String()),
		)
	}
}

// Close stops accepting events, drains the buffer, and waits for the worker.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		r.closed.Store(true)
		close(r.done)
		r.wg.Wait()
	})
}

// Dropped returns the number of events lost to a full buffer.
func (r *Recorder) Dropped() uint64 {
	if r == nil {
		return 0
	}

	return r.dropped.Load()
}

func (r *Recorder) run() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.ch:
			r.append(record)
		case <-r.done:
			for {
				select {
				case record := <-r.ch:
					r.append(record)
				default:
					return
				}
			}
		}
	}
}

// append writes one record; failures are logged and otherwise ignored.
func (r *Recorder) append(record entity.ActivityRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	if err := r.repo.Append(ctx, &record); err != nil {
		r.logger.Warn("Failed to record activity",
			slog.String("email", record.Email),
			slog.String("role", record.Role.String()),
			slog.String("activity", record.Activity.String()),
			slog.Any("error", err),
		)
	}
}
