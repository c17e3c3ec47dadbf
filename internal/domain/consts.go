package domain

// Notification backends selectable with NOTIFIER
const (
	NotifierLine  = "line"
	NotifierSlack = "slack"
	NotifierSNS   = "sns"
)

// DefaultNotifyTime is the daily push time when NOTIFY_TIME is unset
const DefaultNotifyTime = "22:00"
