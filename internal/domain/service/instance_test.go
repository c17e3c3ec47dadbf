package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewInstance(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	instance := NewInstance(Options{
		User:          "octocat",
		Recipient:     "U123",
		TriggerHour:   21,
		TriggerMinute: 30,
		MaxCycles:     1,
		Location:      loc,
		CycleTimeout:  5 * time.Second,
	}, m.mockCalendar, m.mockNotifier, m.mockDeliveries, newTestLogger())

	require.NotNil(t, instance.Checker)
	require.NotNil(t, instance.Dispatcher)
	require.NotNil(t, instance.Scheduler)

	assert.Equal(t, 21, instance.Scheduler.state.TriggerHour)
	assert.Equal(t, 30, instance.Scheduler.state.TriggerMinute)
	assert.Equal(t, 1, instance.Scheduler.state.MaxCycles)
	assert.Equal(t, 5*time.Second, instance.Scheduler.cycleTimeout)
	assert.Equal(t, loc, instance.Scheduler.state.Clock.Now().Location())

	// The checker and dispatcher share the configured user and recipient
	m.mockCalendar.EXPECT().FetchCalendar(gomock.Any(), "octocat").
		Return(entity.ContributionCalendar{}, nil).Times(1)
	m.mockNotifier.EXPECT().Push(gomock.Any(), "U123", gomock.Any()).Return(nil).Times(1)
	m.mockDeliveries.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := instance.Checker.CheckToday(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Contributed)
	assert.Equal(t, time.Now().In(loc).Format(entity.DateLayout), result.Date)

	require.NoError(t, instance.Dispatcher.Push(context.Background(), "cycle-1", result))
}
