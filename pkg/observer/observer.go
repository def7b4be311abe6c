package observer

import "sale-alerts/models/entities"

type EventType int

const (
	ListingEvent EventType = 1
)

type Event struct {
	E       EventType
	Listing entities.Listing
}

func NewListingEvent(listing entities.Listing) Event {
	return Event{Listing: listing, E: ListingEvent}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	RegisterObserver(Observer)
}
