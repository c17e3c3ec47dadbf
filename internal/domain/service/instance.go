package service

import (
	"time"

	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

type Options struct {
	User          string
	Recipient     string
	TriggerHour   int
	TriggerMinute int
	MaxCycles     int
	Location      *time.Location
	CycleTimeout  time.Duration
}

type Instance struct {
	Checker    contract.Checker
	Dispatcher contract.Dispatcher
	Scheduler  *scheduler
}

func NewInstance(opts Options, calendar contract.CalendarClient, notifier contract.Notifier, deliveries contract.DeliveryRepo, log *logrus.Entry) *Instance {
	clock := SystemClock(opts.Location)
	checker := newChecker(calendar, opts.User, clock)
	dispatcher := newDispatcher(notifier, deliveries, opts.Recipient, log.WithField("component", "dispatcher"))

	sched := newScheduler(&SchedulerState{
		TriggerHour:   opts.TriggerHour,
		TriggerMinute: opts.TriggerMinute,
		MaxCycles:     opts.MaxCycles,
		Clock:         clock,
	}, checker, dispatcher, log.WithField("component", "scheduler"))
	if opts.CycleTimeout > 0 {
		sched.cycleTimeout = opts.CycleTimeout
	}

	return &Instance{
		Checker:    checker,
		Dispatcher: dispatcher,
		Scheduler:  sched,
	}
}
