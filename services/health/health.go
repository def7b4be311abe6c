package health

import (
	"errors"
	"sale-alerts/models/constants"
	"sale-alerts/repositories/feedsources"
	"sale-alerts/repositories/listings"

	"github.com/dustin/go-humanize"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func New(scheduler gocron.Scheduler, cronTab, feedURL string, listingRepo listings.Repository,
	feedSourceRepo feedsources.Repository) (*Impl, error) {
	service := Impl{feedURL: feedURL, listingRepo: listingRepo, feedSourceRepo: feedSourceRepo}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(cronTab, false),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) echo() {
	event := log.Info()
	if size, err := service.listingRepo.Count(); err != nil {
		log.Warn().Err(err).Msg("Cannot count listings")
	} else {
		event = event.Int64(constants.LogLedgerSize, size)
	}

	source, err := service.feedSourceRepo.Get(service.feedURL)
	switch {
	case err == nil:
		event = event.
			Str(constants.LogLastCycle, humanize.Time(source.LastUpdate)).
			Str(constants.LogListingID, source.FrontierID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		event = event.Str(constants.LogLastCycle, "never")
	default:
		log.Warn().Err(err).Msg("Cannot read feed source")
	}

	event.Msgf("Application is running")
}
