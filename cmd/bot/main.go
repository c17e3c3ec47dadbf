package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/diegoclair/daily-commit-bot/internal/config"
	"github.com/diegoclair/daily-commit-bot/internal/database"
	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/diegoclair/daily-commit-bot/internal/domain/service"
	"github.com/diegoclair/daily-commit-bot/internal/github"
	"github.com/diegoclair/daily-commit-bot/internal/handlers"
	"github.com/diegoclair/daily-commit-bot/internal/line"
	"github.com/diegoclair/daily-commit-bot/internal/slack"
	"github.com/diegoclair/daily-commit-bot/internal/sns"
	"github.com/diegoclair/daily-commit-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.NewEntry(logger)

	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}

	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.WithError(err).Warn("failed to set GOMAXPROCS")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	logger.SetLevel(cfg.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	log.Info("Migrations completed successfully")

	dm := database.NewInstance(db)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout()}
	calendar := github.NewClient(cfg.GitHubGraphQLURL, cfg.GitHubToken, cfg.GitHubUserAgent, httpClient)

	notifier, err := newNotifier(ctx, cfg, httpClient)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize notifier")
	}

	svc := service.NewInstance(service.Options{
		User:          cfg.GitHubUser,
		Recipient:     cfg.Recipient(),
		TriggerHour:   cfg.TriggerHour,
		TriggerMinute: cfg.TriggerMinute,
		MaxCycles:     cfg.SchedulerMaxCycles,
		Location:      cfg.Location,
		CycleTimeout:  2 * cfg.HTTPTimeout(),
	}, calendar, notifier, dm.Delivery(), log)

	var status contract.SchedulerStatus
	if cfg.SchedulerEnabled {
		svc.Scheduler.Start(ctx)
		defer svc.Scheduler.Stop()
		status = svc.Scheduler
	}

	secret := ""
	if cfg.Notifier == config.NotifierLine {
		secret = cfg.LineChannelSecret
	}
	handler := handlers.New(svc.Checker, svc.Dispatcher, dm.Delivery(), status, secret,
		log.WithField("component", "http"))

	mux := http.NewServeMux()
	handler.Register(mux)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		log.WithError(err).Fatal("failed to listen")
	}

	log.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"notifier": cfg.Notifier,
		"user":     cfg.GitHubUser,
	}).Info("Server starting")
	if err := runServer(ctx, server, listener, shutdownTimeout, log); err != nil {
		log.WithError(err).Error("server failed")
	}

	log.Info("shutting down")
}

func newNotifier(ctx context.Context, cfg *config.Config, httpClient *http.Client) (contract.Notifier, error) {
	switch cfg.Notifier {
	case config.NotifierSlack:
		return slack.NewNotifier(slack.NewClient(cfg.SlackBotToken, "", httpClient)), nil
	case config.NotifierSNS:
		awsConfig, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		client := awssns.NewFromConfig(awsConfig, func(o *awssns.Options) {
			o.HTTPClient = httpClient
		})
		return sns.NewNotifier(client, cfg.SNSTopicARN), nil
	default:
		return line.NewNotifier(cfg.LineAPIURL, cfg.LineChannelAccessToken, httpClient), nil
	}
}
