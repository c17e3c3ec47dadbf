package line

import (
	"context"
	"strings"

	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/diegoclair/daily-commit-bot/internal/transport"
)

const (
	DefaultAPIURL = "https://api.line.me"

	providerName = "line"
	pushPath     = "/v2/bot/message/push"
	replyPath    = "/v2/bot/message/reply"
	textType     = "text"
)

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

// Notifier talks to the LINE Messaging API with a channel access token.
type Notifier struct {
	BaseURL string
	API     *transport.Client
}

func NewNotifier(baseURL, accessToken string, doer transport.HTTPDoer) *Notifier {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Notifier{
		BaseURL: strings.TrimRight(baseURL, "/"),
		API:     transport.NewClient(providerName, accessToken, doer),
	}
}

func (n *Notifier) Push(ctx context.Context, to, text string) error {
	return n.API.PostJSON(ctx, n.BaseURL+pushPath, pushRequest{
		To:       to,
		Messages: []textMessage{{Type: textType, Text: text}},
	}, nil)
}

func (n *Notifier) Reply(ctx context.Context, replyToken, text string) error {
	return n.API.PostJSON(ctx, n.BaseURL+replyPath, replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: textType, Text: text}},
	}, nil)
}

var _ contract.Notifier = (*Notifier)(nil)
