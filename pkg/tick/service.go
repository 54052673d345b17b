// Package tick provides the monotonic discrete project clock. Schedulers
// (decision timeouts, trust decay, periodic injection) subscribe to it instead
// of wall-clock time so tests and operators can drive the system manually.
package tick

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Modes of clock advancement.
const (
	ModeManual = "manual"
	ModeTimer  = "timer"
)

// Subscriber is invoked once per tick, in registration order. All subscribers
// observe tick t before any subscriber observes t+1.
type Subscriber func(tick int64)

// Service is the monotonic integer clock.
type Service struct {
	mode     string
	interval time.Duration

	current atomic.Int64

	mu      sync.Mutex // serializes Advance and subscription changes
	subs    map[int64]Subscriber
	subSeq  []int64 // registration order
	nextSub int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewService creates a clock in the given mode. interval is used only in
// timer mode.
func NewService(mode string, interval time.Duration) (*Service, error) {
	switch mode {
	case ModeManual, ModeTimer:
	default:
		return nil, fmt.Errorf("unknown tick mode %q", mode)
	}
	if mode == ModeTimer && interval <= 0 {
		return nil, fmt.Errorf("timer mode requires a positive interval")
	}
	return &Service{
		mode:     mode,
		interval: interval,
		subs:     make(map[int64]Subscriber),
		stopCh:   make(chan struct{}),
	}, nil
}

// Mode returns the configured advancement mode.
func (s *Service) Mode() string {
	return s.mode
}

// Current returns the current tick without taking the advance lock, so
// subscribers can read it re-entrantly.
func (s *Service) Current() int64 {
	return s.current.Load()
}

// Subscribe registers a callback fired once per tick. Returns an id for
// Unsubscribe.
func (s *Service) Subscribe(fn Subscriber) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subSeq = append(s.subSeq, id)
	return id
}

// Unsubscribe removes a subscriber. Idempotent.
func (s *Service) Unsubscribe(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	for i, sid := range s.subSeq {
		if sid == id {
			s.subSeq = append(s.subSeq[:i], s.subSeq[i+1:]...)
			break
		}
	}
}

// Advance moves the clock forward by n ticks, firing every subscriber once per
// intermediate tick. Subscriber panics are recovered so one bad scheduler
// cannot stall the clock.
func (s *Service) Advance(ctx context.Context, n int64) (int64, error) {
	if n <= 0 {
		return s.current.Load(), fmt.Errorf("advance requires n > 0, got %d", n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var t int64
	for i := int64(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return s.current.Load(), err
		}
		t = s.current.Add(1)
		for _, id := range s.snapshotSubsLocked() {
			fn, ok := s.subs[id]
			if !ok {
				continue
			}
			s.fire(fn, t)
		}
	}
	return t, nil
}

// snapshotSubsLocked copies the registration order so a subscriber that
// unsubscribes mid-tick does not disturb iteration.
func (s *Service) snapshotSubsLocked() []int64 {
	ids := make([]int64, len(s.subSeq))
	copy(ids, s.subSeq)
	return ids
}

func (s *Service) fire(fn Subscriber, t int64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Tick subscriber panicked", "tick", t, "panic", r)
		}
	}()
	fn(t)
}

// Start launches the timer loop in timer mode. No-op in manual mode.
func (s *Service) Start(ctx context.Context) {
	if s.mode != ModeTimer || s.started {
		return
	}
	s.started = true
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := s.Advance(ctx, 1); err != nil {
					slog.Warn("Timer tick aborted", "error", err)
				}
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	slog.Info("Tick service started", "mode", s.mode, "interval", s.interval)
}

// Stop halts the timer loop. Safe to call multiple times and in manual mode.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}
