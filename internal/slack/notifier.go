package slack

import (
	"context"
	"errors"
	"net/http"

	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	slackgo "github.com/slack-go/slack"
)

const providerName = "slack"

// Client defines the Slack operations the notifier needs
// This allows mocking in tests while keeping the real implementation simple
type Client interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackgo.MsgOption) (string, string, error)
}

// Notifier posts to Slack channels. Push targets the configured channel and
// Reply targets the channel carried by the inbound event.
type Notifier struct {
	client Client
}

func NewNotifier(client Client) *Notifier {
	return &Notifier{client: client}
}

// NewClient builds a slack-go client bounded by httpClient's timeout.
func NewClient(token, apiURL string, httpClient *http.Client) *slackgo.Client {
	options := []slackgo.Option{slackgo.OptionHTTPClient(httpClient)}
	if apiURL != "" {
		options = append(options, slackgo.OptionAPIURL(apiURL))
	}
	return slackgo.New(token, options...)
}

func (n *Notifier) Push(ctx context.Context, channelID, text string) error {
	return n.post(ctx, channelID, text)
}

func (n *Notifier) Reply(ctx context.Context, channelID, text string) error {
	return n.post(ctx, channelID, text)
}

func (n *Notifier) post(ctx context.Context, channelID, text string) error {
	_, _, err := n.client.PostMessageContext(ctx, channelID,
		slackgo.MsgOptionText(text, false),
		slackgo.MsgOptionAsUser(false),
	)
	if err == nil {
		return nil
	}

	var statusErr slackgo.StatusCodeError
	if errors.As(err, &statusErr) {
		return apperr.Rejected(providerName, statusErr.Code, statusErr.Status)
	}

	var apiErr slackgo.SlackErrorResponse
	if errors.As(err, &apiErr) {
		return apperr.Rejected(providerName, http.StatusOK, apiErr.Err)
	}

	return apperr.Unavailable(err, providerName)
}

var _ contract.Notifier = (*Notifier)(nil)
