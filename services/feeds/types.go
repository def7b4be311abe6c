package feeds

import (
	"context"
	"errors"
	"sale-alerts/pkg/observer"
	"sale-alerts/repositories/feedsources"
	"sale-alerts/repositories/listings"
)

var (
	ErrFetch = errors.New("feed fetch failed")
	ErrParse = errors.New("feed parse failed")
	ErrStore = errors.New("listing store failed")
)

type Service interface {
	RegisterObserver(o observer.Observer)
	RunCycle(ctx context.Context) (CycleReport, error)
}

type CycleReport struct {
	Parsed   int
	New      int
	Notified int
	Frontier string
}

type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Impl struct {
	feedURL        string
	fetcher        FeedFetcher
	listingRepo    listings.Repository
	feedSourceRepo feedsources.Repository
	observers      map[observer.Observer]struct{}
}
