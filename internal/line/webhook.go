package line

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

const SignatureHeader = "X-Line-Signature"

// ErrInvalidSignature is returned when X-Line-Signature does not match the body.
var ErrInvalidSignature = webhook.ErrInvalidSignature

// ParseWebhook decodes a LINE webhook request into inbound events. The
// signature is only checked when channelSecret is set. Events without a reply
// token or a message are dropped and counted in skipped.
func ParseWebhook(channelSecret string, r *http.Request) (events []entity.InboundEvent, skipped int, err error) {
	var cb *webhook.CallbackRequest
	if channelSecret != "" {
		cb, err = webhook.ParseRequest(channelSecret, r)
		if err != nil {
			return nil, 0, err
		}
	} else {
		cb, err = parseUnsigned(r)
		if err != nil {
			return nil, 0, err
		}
	}

	events = make([]entity.InboundEvent, 0, len(cb.Events))
	for _, event := range cb.Events {
		message, ok := event.(webhook.MessageEvent)
		if !ok || message.ReplyToken == "" || message.Message == nil {
			skipped++
			continue
		}

		var text string
		if content, ok := message.Message.(webhook.TextMessageContent); ok {
			text = content.Text
		}

		events = append(events, entity.InboundEvent{
			ReplyAddress: message.ReplyToken,
			Message:      text,
		})
	}

	return events, skipped, nil
}

func parseUnsigned(r *http.Request) (*webhook.CallbackRequest, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook body: %w", err)
	}

	var cb webhook.CallbackRequest
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("failed to decode webhook body: %w", err)
	}

	return &cb, nil
}
