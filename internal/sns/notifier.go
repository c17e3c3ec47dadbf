package sns

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
)

const providerName = "sns"

type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier publishes pushes to an SNS topic. The push recipient is the topic
// ARN; SNS has no notion of replying to an inbound event.
type Notifier struct {
	SNS      Publisher
	TopicARN string
}

func NewNotifier(publisher Publisher, topicARN string) *Notifier {
	return &Notifier{
		SNS:      publisher,
		TopicARN: topicARN,
	}
}

func (n *Notifier) Push(ctx context.Context, topicARN, text string) error {
	if topicARN == "" {
		topicARN = n.TopicARN
	}

	input := &sns.PublishInput{
		Message:  &text,
		TopicArn: &topicARN,
	}

	_, err := n.SNS.Publish(ctx, input)
	if err != nil {
		var respErr interface{ HTTPStatusCode() int }
		if errors.As(err, &respErr) && respErr.HTTPStatusCode() != 0 {
			return apperr.Rejected(providerName, respErr.HTTPStatusCode(), err.Error())
		}
		return apperr.Unavailable(err, providerName)
	}

	return nil
}

func (n *Notifier) Reply(ctx context.Context, replyAddress, text string) error {
	return apperr.NoReply(providerName)
}

var _ contract.Notifier = (*Notifier)(nil)
