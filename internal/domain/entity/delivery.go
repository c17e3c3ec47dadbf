package entity

import "time"

type DeliveryMode string

const (
	DeliveryPush  DeliveryMode = "push"
	DeliveryReply DeliveryMode = "reply"
)

// InboundEvent is a single element of a webhook batch.
type InboundEvent struct {
	ReplyAddress string
	Message      string
}

// Delivery records the outcome of one push or reply attempt.
type Delivery struct {
	ID          int64        `json:"id"`
	CycleID     string       `json:"cycle_id"`
	Mode        DeliveryMode `json:"mode"`
	Recipient   string       `json:"recipient"`
	TargetDate  string       `json:"target_date"`
	Contributed bool         `json:"contributed"`
	Delivered   bool         `json:"delivered"`
	Error       string       `json:"error,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
