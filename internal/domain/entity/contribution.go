package entity

// DateLayout is the calendar date format used by the contribution provider.
const DateLayout = "2006-01-02"

// ContributionDay is one calendar day as returned by the provider.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"contributionCount"`
}

// ContributionWeek holds contiguous, increasing days.
type ContributionWeek struct {
	Days []ContributionDay `json:"contributionDays"`
}

// ContributionCalendar keeps weeks in the order the provider returned them.
type ContributionCalendar struct {
	Weeks []ContributionWeek `json:"weeks"`
}

type EvaluationResult struct {
	Date        string `json:"date"`
	Contributed bool   `json:"contributed"`
}
