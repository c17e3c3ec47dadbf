package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/diegoclair/daily-commit-bot/internal/domain"
	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/sirupsen/logrus"
)

const (
	NotifierLine  = domain.NotifierLine
	NotifierSlack = domain.NotifierSlack
	NotifierSNS   = domain.NotifierSNS
)

type Config struct {
	GitHubToken      string `env:"GITHUB_TOKEN,required"`
	GitHubUser       string `env:"GITHUB_USER,required"`
	GitHubGraphQLURL string `env:"GITHUB_GRAPHQL_URL" envDefault:"https://api.github.com/graphql"`
	GitHubUserAgent  string `env:"GITHUB_USER_AGENT" envDefault:"daily-commit-bot"`

	Notifier               string `env:"NOTIFIER" envDefault:"line"`
	LineChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineChannelSecret      string `env:"LINE_CHANNEL_SECRET"`
	LineAPIURL             string `env:"LINE_API_URL" envDefault:"https://api.line.me"`
	LineUserID             string `env:"LINE_USER_ID"`
	PushRecipient          string `env:"PUSH_RECIPIENT"`
	SlackBotToken          string `env:"SLACK_BOT_TOKEN"`
	SNSTopicARN            string `env:"SNS_TOPIC_ARN"`

	NotifyTime         string `env:"NOTIFY_TIME" envDefault:"22:00"`
	Timezone           string `env:"TIMEZONE" envDefault:"Local"`
	SchedulerEnabled   bool   `env:"SCHEDULER_ENABLED" envDefault:"true"`
	SchedulerMaxCycles int    `env:"SCHEDULER_MAX_CYCLES" envDefault:"0"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"./deliveries.db"`
	Port         string `env:"PORT" envDefault:"8000"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	// Derived by Load
	TriggerHour   int            `env:"-"`
	TriggerMinute int            `env:"-"`
	Location      *time.Location `env:"-"`
	Level         logrus.Level   `env:"-"`
}

// Load reads the process environment. Any absent or invalid value is reported
// as a ConfigurationMissing error.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperr.Missing(err.Error())
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Recipient is the push target for the selected backend.
func (c *Config) Recipient() string {
	if c.PushRecipient != "" {
		return c.PushRecipient
	}
	if c.Notifier == NotifierLine {
		return c.LineUserID
	}
	if c.Notifier == NotifierSNS {
		return c.SNSTopicARN
	}
	return ""
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func (c *Config) resolve() error {
	if c.GitHubToken == "" || c.GitHubUser == "" {
		return apperr.Missing("GITHUB_TOKEN and GITHUB_USER are required")
	}

	if strings.TrimSpace(c.NotifyTime) == "" {
		c.NotifyTime = domain.DefaultNotifyTime
	}

	hour, minute, err := ParseTriggerTime(c.NotifyTime)
	if err != nil {
		return err
	}
	c.TriggerHour, c.TriggerMinute = hour, minute

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return apperr.Missing(fmt.Sprintf("invalid TIMEZONE %q: %v", c.Timezone, err))
	}
	c.Location = loc

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return apperr.Missing(fmt.Sprintf("invalid LOG_LEVEL %q", c.LogLevel))
	}
	c.Level = level

	if c.HTTPTimeoutSeconds <= 0 {
		return apperr.Missing("HTTP_TIMEOUT_SECONDS must be positive")
	}

	c.Notifier = strings.ToLower(strings.TrimSpace(c.Notifier))
	switch c.Notifier {
	case NotifierLine:
		if c.LineChannelAccessToken == "" {
			return apperr.Missing("LINE_CHANNEL_ACCESS_TOKEN is required when NOTIFIER=line")
		}
	case NotifierSlack:
		if c.SlackBotToken == "" {
			return apperr.Missing("SLACK_BOT_TOKEN is required when NOTIFIER=slack")
		}
	case NotifierSNS:
		if c.SNSTopicARN == "" {
			return apperr.Missing("SNS_TOPIC_ARN is required when NOTIFIER=sns")
		}
	default:
		return apperr.Missing(fmt.Sprintf("invalid NOTIFIER %q: must be line, slack or sns", c.Notifier))
	}

	if c.SchedulerEnabled && c.Recipient() == "" {
		return apperr.Missing("a push recipient (PUSH_RECIPIENT or LINE_USER_ID) is required when the scheduler is enabled")
	}

	return nil
}

// ParseTriggerTime parses a 24h "HH:MM" value.
func ParseTriggerTime(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, 0, apperr.Missing(fmt.Sprintf("invalid NOTIFY_TIME %q: expected HH:MM", value))
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, apperr.Missing(fmt.Sprintf("invalid NOTIFY_TIME %q: hour must be 00-23", value))
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, apperr.Missing(fmt.Sprintf("invalid NOTIFY_TIME %q: minute must be 00-59", value))
	}

	return hour, minute, nil
}
