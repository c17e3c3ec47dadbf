package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
	"github.com/sirupsen/logrus"
)

type dispatcher struct {
	notifier   contract.Notifier
	deliveries contract.DeliveryRepo
	recipient  string
	log        *logrus.Entry
	now        func() time.Time
}

func newDispatcher(notifier contract.Notifier, deliveries contract.DeliveryRepo, recipient string, log *logrus.Entry) *dispatcher {
	return &dispatcher{
		notifier:   notifier,
		deliveries: deliveries,
		recipient:  recipient,
		log:        log,
		now:        time.Now,
	}
}

// Push sends the result to the configured recipient. The returned error is
// the delivery outcome; it is never fatal to the caller.
func (d *dispatcher) Push(ctx context.Context, cycleID string, result entity.EvaluationResult) error {
	err := d.notifier.Push(ctx, d.recipient, Message(result))
	d.record(cycleID, entity.DeliveryPush, d.recipient, result, err)

	if err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}

	d.log.WithFields(logrus.Fields{
		"cycle_id":    cycleID,
		"date":        result.Date,
		"contributed": result.Contributed,
	}).Info("push notification sent")
	return nil
}

// ReplyAll answers every event independently and returns one outcome per
// event, in order. A failed reply does not stop the remaining ones.
func (d *dispatcher) ReplyAll(ctx context.Context, cycleID string, events []entity.InboundEvent, result entity.EvaluationResult) []error {
	text := Message(result)
	outcomes := make([]error, len(events))

	for i, event := range events {
		err := d.notifier.Reply(ctx, event.ReplyAddress, text)
		d.record(cycleID, entity.DeliveryReply, event.ReplyAddress, result, err)

		if err != nil {
			d.log.WithError(err).WithFields(logrus.Fields{
				"cycle_id": cycleID,
				"event":    i,
			}).Error("failed to send reply")
			outcomes[i] = fmt.Errorf("failed to reply to event %d: %w", i, err)
		}
	}

	return outcomes
}

func (d *dispatcher) record(cycleID string, mode entity.DeliveryMode, recipient string, result entity.EvaluationResult, sendErr error) {
	if d.deliveries == nil {
		return
	}

	delivery := &entity.Delivery{
		CycleID:     cycleID,
		Mode:        mode,
		Recipient:   recipient,
		TargetDate:  result.Date,
		Contributed: result.Contributed,
		Delivered:   sendErr == nil,
		CreatedAt:   d.now().UTC(),
	}
	if sendErr != nil {
		delivery.Error = sendErr.Error()
	}

	// Continue anyway, the message outcome matters more than its history
	if err := d.deliveries.Create(delivery); err != nil {
		d.log.WithError(err).WithField("cycle_id", cycleID).Warn("failed to record delivery")
	}
}

var _ contract.Dispatcher = (*dispatcher)(nil)
