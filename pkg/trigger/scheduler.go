// Package trigger turns player actions into delayed, idempotent narrative
// consequences. A trigger fires at most once per playthrough: scheduling is
// gated by an "already scheduled or fired" check, and the guard flag is set
// before the effect runs.
package trigger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/GabrielH4nma/Pilar-IV/pkg/state"
)

// Effect is a trigger's state mutation sequence. The context bounds it:
// multi-beat effects must stop between beats when the context ends.
type Effect func(ctx context.Context, gs *state.GameState)

// Trigger is a guarded, delayed story beat.
type Trigger struct {
	Name   string
	Guard  string
	Delay  time.Duration
	Effect Effect
}

// Scheduler registers triggers and fires them after their delay. All pending
// timers are tied to the scheduler's context; Stop drops them without firing
// (no partial mutation from an abandoned task).
type Scheduler struct {
	gs     *state.GameState
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	triggers  map[string]Trigger
	scheduled map[string]bool
}

// NewScheduler creates a scheduler bound to the given state.
func NewScheduler(gs *state.GameState, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		gs:        gs,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		triggers:  make(map[string]Trigger),
		scheduled: make(map[string]bool),
	}
}

// Register adds a trigger definition. Later registrations with the same name
// replace earlier ones; registration alone never schedules anything.
func (s *Scheduler) Register(t Trigger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggers[t.Name] = t
}

// Schedule arms the named trigger. The call is a no-op when the trigger is
// unknown, already in flight, or its guard flag is already set — rapid
// repeated player actions therefore produce exactly one firing.
func (s *Scheduler) Schedule(name string) {
	s.mu.Lock()
	t, ok := s.triggers[name]
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("unknown trigger", "trigger", name)
		return
	}
	if s.scheduled[name] || s.gs.Flag(t.Guard) {
		s.mu.Unlock()
		return
	}
	s.scheduled[name] = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.fireAfter(t)
}

// Fired reports whether the trigger's guard flag is set.
func (s *Scheduler) Fired(name string) bool {
	s.mu.Lock()
	t, ok := s.triggers[name]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return s.gs.Flag(t.Guard)
}

// Stop cancels every pending timer and waits for in-flight effects to
// observe the cancellation.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) fireAfter(t Trigger) {
	defer s.wg.Done()

	timer := time.NewTimer(t.Delay)
	defer timer.Stop()
	select {
	case <-s.ctx.Done():
		return
	case <-timer.C:
	}

	// The guard is set before the effect runs: at-most-once-attempted. A
	// trigger whose effect skips (absent contact) still counts as fired.
	if !s.gs.SetFlag(t.Guard) {
		return
	}
	s.logger.Debug("trigger fired", "trigger", t.Name)
	t.Effect(s.ctx, s.gs)
}
