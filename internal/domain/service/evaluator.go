package service

import "github.com/diegoclair/daily-commit-bot/internal/domain/entity"

// Evaluate reports whether the calendar holds a day matching targetDate with
// a positive count. A missing day is not an error: the provider may not have
// backfilled it yet.
func Evaluate(calendar entity.ContributionCalendar, targetDate string) entity.EvaluationResult {
	result := entity.EvaluationResult{Date: targetDate}

	for _, week := range calendar.Weeks {
		for _, day := range week.Days {
			if day.Date == targetDate {
				if day.Count > 0 {
					result.Contributed = true
				}
				break
			}
		}
	}

	return result
}

// Message renders the short status text sent to the user.
func Message(result entity.EvaluationResult) string {
	if result.Contributed {
		return "✅ You've committed today (" + result.Date + "). Keep the streak going!"
	}
	return "❌ No contributions yet today (" + result.Date + "). There's still time!"
}
