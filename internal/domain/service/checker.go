package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
)

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return ClockFunc(func() time.Time { return time.Now().In(loc) })
}

type checker struct {
	calendar contract.CalendarClient
	user     string
	clock    Clock
}

func newChecker(calendar contract.CalendarClient, user string, clock Clock) *checker {
	return &checker{
		calendar: calendar,
		user:     user,
		clock:    clock,
	}
}

func (c *checker) CheckToday(ctx context.Context) (entity.EvaluationResult, error) {
	today := c.clock.Now().Format(entity.DateLayout)

	calendar, err := c.calendar.FetchCalendar(ctx, c.user)
	if err != nil {
		return entity.EvaluationResult{}, fmt.Errorf("failed to fetch contribution calendar: %w", err)
	}

	return Evaluate(calendar, today), nil
}

var _ contract.Checker = (*checker)(nil)
