package notifier

import (
	"context"
	"fmt"
	"sale-alerts/models/constants"
	"sale-alerts/models/entities"
	"sale-alerts/pkg/observer"
	"sale-alerts/utils/dates"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// New builds a notifier delivering through sink. Listings sent within dedupTTL are not sent twice.
func New(sink Sink, location *time.Location, timeout, dedupTTL time.Duration) *Impl {
	if location == nil {
		location = time.Local
	}

	return &Impl{
		sink:     sink,
		location: location,
		timeout:  timeout,
		sent:     cache.New(dedupTTL, 2*dedupTTL),
	}
}

func (service *Impl) OnNotify(e observer.Event) {
	if e.E != observer.ListingEvent {
		return
	}

	if err := service.Notify(e.Listing); err != nil {
		log.Error().Err(err).
			Str(constants.LogListingID, e.Listing.ID).
			Str(constants.LogSink, service.sink.Name()).
			Msg("Error sending out notification, continuing...")
	}
}

// Notify delivers one listing. Failures are wrapped in ErrNotify and never retried.
func (service *Impl) Notify(listing entities.Listing) error {
	if _, found := service.sent.Get(listing.ID); found {
		log.Debug().Str(constants.LogListingID, listing.ID).Msg("Listing already notified, skipped")
		return nil
	}

	log.Info().
		Str(constants.LogListingID, listing.ID).
		Str(constants.LogSink, service.sink.Name()).
		Msg("New listing found!")

	ctx := context.Background()
	if service.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, service.timeout)
		defer cancel()
	}

	if err := service.sink.Send(ctx, NewMessage(listing, service.location)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotify, listing.ID, err)
	}

	service.sent.SetDefault(listing.ID, struct{}{})
	return nil
}

// NewMessage renders a listing the way every sink shows it.
func NewMessage(listing entities.Listing, location *time.Location) Message {
	body := listing.Title + "\n" +
		listing.URL + "\n" +
		"(" + dates.FormatLocal(listing.PublishedAt, location) + ")"

	var actions []Action
	if listing.URL != "" {
		actions = append(actions, Action{Label: "Product Link", URL: listing.URL})
	}
	if listing.RedditLink != "" {
		actions = append(actions, Action{Label: "Post Link", URL: listing.RedditLink})
	}

	return Message{
		Subject:  "New Sale: [" + listing.Type + ", " + listing.Price + "]",
		Body:     body,
		Priority: PriorityDefault,
		Tags:     []string{TagComputer},
		Actions:  actions,
	}
}
