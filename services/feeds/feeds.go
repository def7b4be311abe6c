package feeds

import (
	"context"
	"fmt"
	"sale-alerts/models/constants"
	"sale-alerts/models/entities"
	"sale-alerts/pkg/observer"
	"sale-alerts/repositories/feedsources"
	"sale-alerts/repositories/listings"
	"time"

	"github.com/rs/zerolog/log"
)

func New(feedURL string, fetcher FeedFetcher, listingRepo listings.Repository,
	feedSourceRepo feedsources.Repository) *Impl {
	return &Impl{
		feedURL:        feedURL,
		fetcher:        fetcher,
		listingRepo:    listingRepo,
		feedSourceRepo: feedSourceRepo,
		observers:      map[observer.Observer]struct{}{},
	}
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

// RunCycle fetches the feed, records every listing not seen before and notifies the selected ones.
// The ledger is committed only once the whole cycle went through; any error leaves it untouched.
func (service *Impl) RunCycle(ctx context.Context) (CycleReport, error) {
	var report CycleReport

	log.Info().
		Str(constants.LogFeedURL, service.feedURL).
		Msgf("Reading feed...")

	raw, err := service.fetcher.Fetch(ctx, service.feedURL)
	if err != nil {
		return report, err
	}

	parsed, err := Parse(raw)
	if err != nil {
		return report, err
	}
	report.Parsed = len(parsed)

	ledger, err := service.listingRepo.Begin()
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrStore, err)
	}
	defer func() {
		if errRollback := ledger.Rollback(); errRollback != nil {
			log.Error().Err(errRollback).Msg("Cannot rollback ledger transaction, continuing...")
		}
	}()

	fresh, err := Classify(ledger, parsed)
	if err != nil {
		return report, err
	}
	report.New = len(fresh)

	if len(fresh) < len(parsed) {
		log.Debug().
			Str(constants.LogListingID, parsed[len(fresh)].ID).
			Msg("Encountered listing already stored, hit all new listings since last call")
	}

	selected := SelectForNotification(fresh)
	if len(selected) < len(fresh) {
		log.Warn().
			Int(constants.LogNewListings, len(fresh)).
			Int(constants.LogNotified, len(selected)).
			Msg("Too many new listings, only pushing the latest")
	}

	for _, listing := range selected {
		service.publishListing(listing)
	}
	report.Notified = len(selected)

	if err := ledger.Commit(); err != nil {
		return report, fmt.Errorf("%w: commit: %w", ErrStore, err)
	}

	if len(parsed) > 0 {
		report.Frontier = parsed[0].ID
		service.saveFrontier(report.Frontier)
	}

	log.Info().
		Str(constants.LogFeedURL, service.feedURL).
		Int(constants.LogListingNumber, report.Parsed).
		Int(constants.LogNewListings, report.New).
		Int(constants.LogNotified, report.Notified).
		Msgf("Cycle completed (%s)", time.Now().Format(constants.NotificationDateFormat))

	return report, nil
}

func (service *Impl) publishListing(listing entities.Listing) {
	for o := range service.observers {
		o.OnNotify(observer.NewListingEvent(listing))
	}
}

func (service *Impl) saveFrontier(frontierID string) {
	err := service.feedSourceRepo.Save(entities.FeedSource{
		URL:        service.feedURL,
		FrontierID: frontierID,
		LastUpdate: time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).
			Str(constants.LogFeedURL, service.feedURL).
			Str(constants.LogListingID, frontierID).
			Msg("Impossible to update feed source, ledger is committed anyway")
	}
}
