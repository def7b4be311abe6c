package application

import (
	"context"
	"net/http"
	"sale-alerts/models/constants"
	"sale-alerts/models/entities"
	"sale-alerts/repositories/feedsources"
	"sale-alerts/repositories/listings"
	"sale-alerts/services/feeds"
	"sale-alerts/services/health"
	"sale-alerts/services/notifier"
	"sale-alerts/services/ntfy"
	"sale-alerts/services/scheduler"
	"sale-alerts/services/telegram"
	databases "sale-alerts/utils/databases"
	"sale-alerts/utils/dates"
	"sale-alerts/utils/insights"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func New(cfg Config) (*Impl, error) {
	if errConfig := cfg.Validate(); errConfig != nil {
		return nil, errConfig
	}

	location, err := dates.LoadLocation(cfg.NotifyTimezone)
	if err != nil {
		return nil, err
	}

	db, err := databases.New(cfg.Database)
	if err != nil {
		return nil, err
	}
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.Listing{}, &entities.FeedSource{})
	if errMigration != nil {
		db.Shutdown()
		return nil, errMigration
	}

	sink, errSink := newSink(cfg)
	if errSink != nil {
		db.Shutdown()
		return nil, errSink
	}

	cron, errScheduler := gocron.NewScheduler(gocron.WithLocation(location))
	if errScheduler != nil {
		db.Shutdown()
		return nil, errScheduler
	}

	// Repositories
	listingRepo := listings.New(db)
	feedSourceRepo := feedsources.New(db)

	if _, errHealth := health.New(cron, cfg.HealthCronTab, cfg.FeedURL, listingRepo, feedSourceRepo); errHealth != nil {
		db.Shutdown()
		return nil, errHealth
	}

	fetcher := feeds.NewFetcher(&http.Client{}, cfg.UserAgent, cfg.FeedTimeout)
	feedsService := feeds.New(cfg.FeedURL, fetcher, listingRepo, feedSourceRepo)
	feedsService.RegisterObserver(notifier.New(sink, location, cfg.FeedTimeout, cfg.NotifyDedupTTL))

	poller := scheduler.New(cfg.PollInterval, func(ctx context.Context) error {
		_, errCycle := feedsService.RunCycle(ctx)
		return errCycle
	})

	return &Impl{
		cron:   cron,
		poller: poller,
		db:     db,
		probes: insights.NewProbes(cfg.ProbePort, db.IsConnected),
	}, nil
}

func newSink(cfg Config) (notifier.Sink, error) {
	switch cfg.NotifySink {
	case constants.SinkTelegram:
		return telegram.New(cfg.TelegramToken, cfg.TelegramChatID)
	default:
		return ntfy.New(cfg.NtfyURL, &http.Client{}), nil
	}
}

func (app *Impl) Run() {
	app.cron.Start()
	for _, job := range app.cron.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	app.poller.Start(context.Background())
	app.probes.ListenAndServe()
}

func (app *Impl) Shutdown() {
	app.poller.Stop()

	if err := app.cron.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.probes.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown probes, continuing...")
	}

	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
