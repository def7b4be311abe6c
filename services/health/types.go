package health

import (
	"sale-alerts/repositories/feedsources"
	"sale-alerts/repositories/listings"
)

type Impl struct {
	feedURL        string
	listingRepo    listings.Repository
	feedSourceRepo feedsources.Repository
}
