package contract

import (
	"context"

	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
)

// CalendarClient fetches the contribution calendar of a user.
type CalendarClient interface {
	FetchCalendar(ctx context.Context, user string) (entity.ContributionCalendar, error)
}
