package contract

import "context"

// Notifier delivers a status message through a messaging provider
// This allows swapping LINE, Slack or SNS behind the same calls
type Notifier interface {
	// Push sends an unsolicited message to a fixed recipient
	Push(ctx context.Context, to, text string) error

	// Reply answers an inbound event using its reply address
	Reply(ctx context.Context, replyAddress, text string) error
}
