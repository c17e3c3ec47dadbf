package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// advancingWait moves the fake clock forward instead of sleeping and records
// every requested delay.
func advancingWait(clock *fakeClock, delays *[]time.Duration) WaitFunc {
	return func(ctx context.Context, d time.Duration) bool {
		*delays = append(*delays, d)
		if ctx.Err() != nil {
			return false
		}
		clock.Advance(d)
		return true
	}
}

func TestNextDelay(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		hour   int
		minute int
		want   time.Duration
	}{
		{
			name:   "Should wait until later today",
			now:    time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC),
			hour:   22,
			minute: 0,
			want:   12 * time.Hour,
		},
		{
			name:   "Should roll over midnight when trigger has passed",
			now:    time.Date(2024, 8, 15, 23, 50, 0, 0, time.UTC),
			hour:   22,
			minute: 0,
			want:   22*time.Hour + 10*time.Minute,
		},
		{
			name:   "Should wait a full day when now is the trigger instant",
			now:    time.Date(2024, 8, 15, 22, 0, 0, 0, time.UTC),
			hour:   22,
			minute: 0,
			want:   24 * time.Hour,
		},
		{
			name:   "Should handle sub second remainders",
			now:    time.Date(2024, 8, 15, 21, 59, 59, 500_000_000, time.UTC),
			hour:   22,
			minute: 0,
			want:   500 * time.Millisecond,
		},
		{
			name:   "Should handle midnight trigger",
			now:    time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
			hour:   0,
			minute: 0,
			want:   time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDelay(tt.now, tt.hour, tt.minute)
			assert.Equal(t, tt.want, got)

			at := tt.now.Add(got)
			assert.Equal(t, tt.hour, at.Hour())
			assert.Equal(t, tt.minute, at.Minute())
			assert.Equal(t, 0, at.Second())
			assert.Equal(t, 0, at.Nanosecond())
		})
	}
}

func TestNextDelay_Bounds(t *testing.T) {
	start := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

	for minute := 0; minute < 24*60; minute += 7 {
		now := start.Add(time.Duration(minute)*time.Minute + 13*time.Second)
		for _, trigger := range [][2]int{{0, 0}, {9, 30}, {22, 0}, {23, 59}} {
			d := NextDelay(now, trigger[0], trigger[1])

			assert.Greater(t, d, time.Duration(0))
			assert.LessOrEqual(t, d, 24*time.Hour)

			at := now.Add(d)
			assert.Equal(t, trigger[0], at.Hour())
			assert.Equal(t, trigger[1], at.Minute())
			assert.Equal(t, 0, at.Second())
		}
	}
}

func TestNextTrigger_DaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks move forward at 02:00 on 2024-03-10
	now := time.Date(2024, 3, 9, 23, 0, 0, 0, loc)
	next := NextTrigger(now, 22, 0)

	assert.Equal(t, time.Date(2024, 3, 10, 22, 0, 0, 0, loc), next)
	assert.Equal(t, 22*time.Hour, next.Sub(now))
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newScheduler(&SchedulerState{TriggerHour: 22}, m.mockChecker, m.mockDispatcher, newTestLogger())

	require.NotNil(t, s)
	assert.Equal(t, m.mockChecker, s.checker)
	assert.Equal(t, m.mockDispatcher, s.dispatcher)
	assert.NotNil(t, s.wait)
	assert.False(t, s.running)

	state, next := s.State()
	assert.Equal(t, StateStopped, state)
	assert.True(t, next.IsZero())
}

func Test_scheduler_Run(t *testing.T) {
	positive := entity.EvaluationResult{Date: "2024-08-15", Contributed: true}

	tests := []struct {
		name       string
		now        time.Time
		maxCycles  int
		buildMock  func(mocks allMocks)
		wantDelays []time.Duration
	}{
		{
			name:      "Should push once per cycle and stop at the bound",
			now:       time.Date(2024, 8, 15, 23, 50, 0, 0, time.UTC),
			maxCycles: 2,
			buildMock: func(mocks allMocks) {
				mocks.mockChecker.EXPECT().CheckToday(gomock.Any()).Return(positive, nil).Times(2)
				mocks.mockDispatcher.EXPECT().Push(gomock.Any(), gomock.Any(), positive).Return(nil).Times(2)
			},
			wantDelays: []time.Duration{22*time.Hour + 10*time.Minute, 24 * time.Hour},
		},
		{
			name:      "Should resume waiting when the calendar fetch is rejected",
			now:       time.Date(2024, 8, 15, 21, 0, 0, 0, time.UTC),
			maxCycles: 2,
			buildMock: func(mocks allMocks) {
				gomock.InOrder(
					mocks.mockChecker.EXPECT().CheckToday(gomock.Any()).
						Return(entity.EvaluationResult{}, apperr.Rejected("github", http.StatusBadGateway, "")).Times(1),
					mocks.mockChecker.EXPECT().CheckToday(gomock.Any()).Return(positive, nil).Times(1),
				)
				mocks.mockDispatcher.EXPECT().Push(gomock.Any(), gomock.Any(), positive).Return(nil).Times(1)
			},
			wantDelays: []time.Duration{time.Hour, 24 * time.Hour},
		},
		{
			name:      "Should keep looping after a failed push",
			now:       time.Date(2024, 8, 15, 21, 0, 0, 0, time.UTC),
			maxCycles: 3,
			buildMock: func(mocks allMocks) {
				mocks.mockChecker.EXPECT().CheckToday(gomock.Any()).Return(positive, nil).Times(3)
				mocks.mockDispatcher.EXPECT().Push(gomock.Any(), gomock.Any(), positive).Return(assert.AnError).Times(3)
			},
			wantDelays: []time.Duration{time.Hour, 24 * time.Hour, 24 * time.Hour},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			clock := &fakeClock{now: tt.now}
			var delays []time.Duration

			s := newScheduler(&SchedulerState{
				TriggerHour:   22,
				TriggerMinute: 0,
				MaxCycles:     tt.maxCycles,
				Clock:         clock,
			}, m.mockChecker, m.mockDispatcher, newTestLogger())
			s.wait = advancingWait(clock, &delays)

			err := s.Run(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantDelays, delays)

			state, _ := s.State()
			assert.Equal(t, StateStopped, state)
		})
	}
}

func Test_scheduler_Run_EarlyWakeDoesNotDoubleFire(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	result := entity.EvaluationResult{Date: "2024-08-15"}
	m.mockChecker.EXPECT().CheckToday(gomock.Any()).Return(result, nil).Times(2)
	m.mockDispatcher.EXPECT().Push(gomock.Any(), gomock.Any(), result).Return(nil).Times(2)

	clock := &fakeClock{now: time.Date(2024, 8, 15, 21, 0, 0, 0, time.UTC)}
	var delays []time.Duration

	s := newScheduler(&SchedulerState{TriggerHour: 22, MaxCycles: 2, Clock: clock},
		m.mockChecker, m.mockDispatcher, newTestLogger())
	s.wait = func(ctx context.Context, d time.Duration) bool {
		delays = append(delays, d)
		// Timer fires one millisecond early
		clock.Advance(d - time.Millisecond)
		return true
	}

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, delays, 2)
	assert.Equal(t, time.Hour, delays[0])
	assert.Equal(t, 24*time.Hour+time.Millisecond, delays[1])
}

func Test_scheduler_Run_CancelDuringWait(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// No CheckToday or Push expected: cancelling must not trigger a cycle
	clock := &fakeClock{now: time.Date(2024, 8, 15, 21, 0, 0, 0, time.UTC)}
	s := newScheduler(&SchedulerState{TriggerHour: 22, Clock: clock},
		m.mockChecker, m.mockDispatcher, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		state, next := s.State()
		return state == StateWaiting && !next.IsZero()
	}, time.Second, 5*time.Millisecond)

	_, next := s.State()
	assert.Equal(t, time.Date(2024, 8, 15, 22, 0, 0, 0, time.UTC), next)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}

func Test_scheduler_Start_Stop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clock := &fakeClock{now: time.Date(2024, 8, 15, 21, 0, 0, 0, time.UTC)}
	s := newScheduler(&SchedulerState{TriggerHour: 22, Clock: clock},
		m.mockChecker, m.mockDispatcher, newTestLogger())

	// Initial state
	assert.False(t, s.running)

	s.Start(context.Background())
	assert.True(t, s.running)

	// Starting again should not change state
	s.Start(context.Background())
	assert.True(t, s.running)

	s.Stop()
	assert.False(t, s.running)

	state, _ := s.State()
	assert.Equal(t, StateStopped, state)

	// Stopping again should not block
	s.Stop()
	assert.False(t, s.running)
}

func Test_sleepContext(t *testing.T) {
	assert.True(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleepContext(ctx, time.Hour))
}
