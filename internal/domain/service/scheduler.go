package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	StateWaiting    = "waiting"
	StateTriggering = "triggering"
	StateStopped    = "stopped"

	defaultCycleTimeout = 1 * time.Minute
)

// SchedulerState is owned by the scheduler loop. MaxCycles <= 0 means the
// loop runs until its context is cancelled.
type SchedulerState struct {
	TriggerHour   int
	TriggerMinute int
	MaxCycles     int
	Clock         Clock

	cyclesRemaining int
}

func (st *SchedulerState) bounded() bool {
	return st.MaxCycles > 0
}

func (st *SchedulerState) hasCyclesLeft() bool {
	return !st.bounded() || st.cyclesRemaining > 0
}

// WaitFunc suspends for d and reports whether it elapsed before ctx was done.
type WaitFunc func(ctx context.Context, d time.Duration) bool

type scheduler struct {
	state        *SchedulerState
	checker      contract.Checker
	dispatcher   contract.Dispatcher
	log          *logrus.Entry
	wait         WaitFunc
	cycleTimeout time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	current atomic.Value // string
	next    atomic.Value // time.Time
}

func newScheduler(state *SchedulerState, checker contract.Checker, dispatcher contract.Dispatcher, log *logrus.Entry) *scheduler {
	s := &scheduler{
		state:        state,
		checker:      checker,
		dispatcher:   dispatcher,
		log:          log,
		wait:         sleepContext,
		cycleTimeout: defaultCycleTimeout,
	}
	s.current.Store(StateStopped)
	s.next.Store(time.Time{})
	return s
}

// NextTrigger returns the next instant strictly after now whose wall clock in
// now's location reads hour:minute:00.
func NextTrigger(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if target.After(now) {
		return target
	}
	return time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
}

// NextDelay is the time to sleep from now until NextTrigger.
func NextDelay(now time.Time, hour, minute int) time.Duration {
	return NextTrigger(now, hour, minute).Sub(now)
}

func (s *scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true
	s.log.Info("Scheduler starting...")

	go func(done chan struct{}) {
		defer close(done)
		if err := s.Run(ctx); err != nil {
			s.log.WithError(err).Error("scheduler stopped")
		}
	}(s.done)
}

// Stop interrupts the current wait and blocks until the loop has returned.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.log.Info("Scheduler stopping...")
	s.cancel()
	done := s.done
	s.running = false
	s.mu.Unlock()

	<-done
}

// State reports the loop state and the next trigger instant, if waiting.
func (s *scheduler) State() (string, time.Time) {
	return s.current.Load().(string), s.next.Load().(time.Time)
}

// Run drives the Waiting/Triggering loop until ctx is done or the cycle bound
// is exhausted. Missed triggers are not caught up.
func (s *scheduler) Run(ctx context.Context) error {
	s.state.cyclesRemaining = s.state.MaxCycles
	defer func() {
		s.current.Store(StateStopped)
		s.next.Store(time.Time{})
	}()

	var last time.Time
	for s.state.hasCyclesLeft() {
		now := s.state.Clock.Now()
		next := NextTrigger(now, s.state.TriggerHour, s.state.TriggerMinute)
		if !last.IsZero() && !next.After(last) {
			// Woke up before the instant that already fired
			next = NextTrigger(last, s.state.TriggerHour, s.state.TriggerMinute)
		}

		s.current.Store(StateWaiting)
		s.next.Store(next)
		s.log.WithField("next_trigger", next.Format(time.RFC3339)).Info("waiting for next trigger")

		if !s.wait(ctx, next.Sub(now)) {
			return nil
		}

		s.current.Store(StateTriggering)
		s.runCycle(ctx)
		last = next

		if s.state.bounded() {
			s.state.cyclesRemaining--
		}
	}

	s.log.Info("scheduler cycle bound reached")
	return nil
}

// runCycle performs one evaluation and at most one push. Failures are logged
// and the loop carries on.
func (s *scheduler) runCycle(ctx context.Context) {
	cycleID := uuid.NewString()
	log := s.log.WithField("cycle_id", cycleID)

	ctx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	result, err := s.checker.CheckToday(ctx)
	if err != nil {
		log.WithError(err).Error("skipping today's notification")
		return
	}

	if err := s.dispatcher.Push(ctx, cycleID, result); err != nil {
		log.WithError(err).Error("push notification failed")
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return ctx.Err() == nil
	case <-ctx.Done():
		return false
	}
}
