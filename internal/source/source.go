// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package source implements the per-source synchronization state and its
// refresh scheduling. Each Source owns exactly one repeating job on the shared
// scheduler; starting an already started source replaces the prior job, so
// there is never more than one live timer per source.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/lifeboard/widgetsync/internal/logger"
)

// FetchFunc produces a fresh value for the source. It is called once
// immediately on Start and then once per interval tick.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// State is a point-in-time copy of a source's synchronization state. Data is
// nil until the first successful fetch and keeps the last known good value
// across failed ticks.
type State[T any] struct {
	Data        *T
	Loading     bool
	Err         string
	LastUpdated time.Time
}

// Source ties a fetch function to a repeating schedule and the state the
// fetch cycle maintains.
//
// Stop removes the timer but does not cancel a fetch already in flight.
// Instead every run is tagged with the generation current at Start time;
// begin/settle discard the run once the generation has moved on. This keeps a
// late completion from mutating state after the source was stopped or
// restarted.
type Source[T any] struct {
	name     string
	interval time.Duration
	fetch    FetchFunc[T]
	sched    gocron.Scheduler
	log      *logger.Logger

	mu     sync.Mutex
	jobID  uuid.UUID
	active bool
	gen    uint64

	stateMu     sync.RWMutex
	data        *T
	loading     bool
	errMsg      string
	lastUpdated time.Time
}

// New creates a Source on the given scheduler. The scheduler is shared across
// sources; each Source only ever owns the single job it created itself.
func New[T any](name string, interval time.Duration, sched gocron.Scheduler, fetch FetchFunc[T],
	log *logger.Logger,
) (*Source[T], error) {
	if sched == nil {
		return nil, fmt.Errorf("scheduler is required")
	}
	if fetch == nil {
		return nil, fmt.Errorf("fetch function is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive")
	}
	return &Source[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
		sched:    sched,
		log:      log,
	}, nil
}

// Name returns the source name.
func (s *Source[T]) Name() string {
	return s.name
}

// Start schedules the repeating fetch job: one immediate run, then one run per
// interval. Starting an active source first removes the prior job, so Start is
// idempotent with respect to the number of live timers.
func (s *Source[T]) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		if err := s.removeJobLocked(); err != nil {
			return err
		}
	}

	s.gen++
	gen := s.gen
	job, err := s.sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func(ctx context.Context) { s.run(ctx, gen) }),
		gocron.WithContext(ctx),
		gocron.WithName(s.name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job for source %s: %w", s.name, err)
	}

	s.jobID = job.ID()
	s.active = true
	return nil
}

// Stop removes the repeating job. A fetch already in flight is not cancelled;
// its completion is discarded by the generation check in settle.
func (s *Source[T]) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}
	s.gen++
	return s.removeJobLocked()
}

// Active reports whether the source currently owns a live job.
func (s *Source[T]) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Source[T]) removeJobLocked() error {
	if err := s.sched.RemoveJob(s.jobID); err != nil {
		return fmt.Errorf("failed to remove refresh job for source %s: %w", s.name, err)
	}
	s.jobID = uuid.Nil
	s.active = false

	// A fetch still in flight belongs to a stale generation now and its
	// settle is discarded, so it can no longer clear the loading flag itself.
	s.stateMu.Lock()
	s.loading = false
	s.stateMu.Unlock()
	return nil
}

// run executes one fetch-and-settle cycle for the given generation.
func (s *Source[T]) run(ctx context.Context, gen uint64) {
	if !s.begin(gen) {
		return
	}
	data, err := s.fetch(ctx)
	s.settle(gen, &data, err)
}

// begin marks the source loading and clears the previous error. It refuses to
// start a cycle whose generation is no longer current.
func (s *Source[T]) begin(gen uint64) bool {
	if !s.currentGen(gen) {
		return false
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.loading = true
	s.errMsg = ""
	return true
}

// settle applies a fetch result. Results from a stale generation are dropped;
// on failure the last known good data and lastUpdated stay untouched.
func (s *Source[T]) settle(gen uint64, data *T, err error) {
	if !s.currentGen(gen) {
		s.log.Debug("discarding fetch result from stopped generation",
			slog.String("source", s.name), slog.Uint64("generation", gen))
		return
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.log.Error("fetch failed", slog.String("source", s.name), logger.Err(err))
		return
	}
	s.data = data
	s.lastUpdated = time.Now()
}

func (s *Source[T]) currentGen(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}

// State returns a copy of the current synchronization state.
func (s *Source[T]) State() State[T] {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return State[T]{
		Data:        s.data,
		Loading:     s.loading,
		Err:         s.errMsg,
		LastUpdated: s.lastUpdated,
	}
}
