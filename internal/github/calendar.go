package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
	"github.com/diegoclair/daily-commit-bot/internal/transport"
)

const (
	DefaultGraphQLURL = "https://api.github.com/graphql"
	DefaultUserAgent  = "daily-commit-bot"

	providerName       = "github"
	userAgentHeaderKey = "User-Agent"
)

const contributionsQuery = `query($userName:String!) {
  user(login: $userName) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Pointer and slice fields stay nil when the provider omits them, so a
// missing field is told apart from a zero count or an empty calendar.
type contributionDay struct {
	Date  *string `json:"date"`
	Count *int    `json:"contributionCount"`
}

type contributionWeek struct {
	Days []contributionDay `json:"contributionDays"`
}

type contributionCalendar struct {
	Weeks []contributionWeek `json:"weeks"`
}

type graphQLResponse struct {
	Data *struct {
		User *struct {
			ContributionsCollection *struct {
				ContributionCalendar *contributionCalendar `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type Client struct {
	Endpoint string
	API      *transport.Client
}

func NewClient(endpoint, token, userAgent string, doer transport.HTTPDoer) *Client {
	if endpoint == "" {
		endpoint = DefaultGraphQLURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	api := transport.NewClient(providerName, token, doer)
	api.Headers[userAgentHeaderKey] = userAgent

	return &Client{
		Endpoint: endpoint,
		API:      api,
	}
}

// FetchCalendar never returns an empty calendar in place of an error.
func (c *Client) FetchCalendar(ctx context.Context, user string) (entity.ContributionCalendar, error) {
	req := graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]any{"userName": user},
	}

	var resp graphQLResponse
	if err := c.API.PostJSON(ctx, c.Endpoint, req, &resp); err != nil {
		return entity.ContributionCalendar{}, err
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		return entity.ContributionCalendar{}, apperr.Malformed(nil, providerName,
			fmt.Sprintf("graphql errors: %s", strings.Join(messages, "; ")))
	}

	switch {
	case resp.Data == nil:
		return entity.ContributionCalendar{}, apperr.Malformed(nil, providerName, "missing data")
	case resp.Data.User == nil:
		return entity.ContributionCalendar{}, apperr.Malformed(nil, providerName, fmt.Sprintf("user %q not found", user))
	case resp.Data.User.ContributionsCollection == nil,
		resp.Data.User.ContributionsCollection.ContributionCalendar == nil:
		return entity.ContributionCalendar{}, apperr.Malformed(nil, providerName, "missing contribution calendar")
	}

	return toCalendar(resp.Data.User.ContributionsCollection.ContributionCalendar)
}

func toCalendar(raw *contributionCalendar) (entity.ContributionCalendar, error) {
	if raw.Weeks == nil {
		return entity.ContributionCalendar{}, apperr.Malformed(nil, providerName, "missing calendar weeks")
	}

	calendar := entity.ContributionCalendar{Weeks: make([]entity.ContributionWeek, 0, len(raw.Weeks))}
	for _, week := range raw.Weeks {
		if week.Days == nil {
			return entity.ContributionCalendar{}, apperr.Malformed(nil, providerName, "missing contribution days")
		}

		days := make([]entity.ContributionDay, 0, len(week.Days))
		for _, day := range week.Days {
			if day.Date == nil || *day.Date == "" || day.Count == nil || *day.Count < 0 {
				return entity.ContributionCalendar{}, apperr.Malformed(nil, providerName, "invalid contribution day")
			}
			days = append(days, entity.ContributionDay{Date: *day.Date, Count: *day.Count})
		}
		calendar.Weeks = append(calendar.Weeks, entity.ContributionWeek{Days: days})
	}

	return calendar, nil
}

var _ contract.CalendarClient = (*Client)(nil)
