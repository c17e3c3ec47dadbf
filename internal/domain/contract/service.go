package contract

import (
	"context"
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
)

// Checker runs one fetch and evaluation for the configured user and today.
type Checker interface {
	CheckToday(ctx context.Context) (entity.EvaluationResult, error)
}

// Dispatcher sends the result of a check and records the outcome.
type Dispatcher interface {
	Push(ctx context.Context, cycleID string, result entity.EvaluationResult) error
	ReplyAll(ctx context.Context, cycleID string, events []entity.InboundEvent, result entity.EvaluationResult) []error
}

// SchedulerStatus exposes the daily loop state for health reporting.
type SchedulerStatus interface {
	State() (string, time.Time)
}
