package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogFeedURL       = "feedURL"
	LogListingID     = "listingID"
	LogListingNumber = "listingNumber"
	LogNewListings   = "newListings"
	LogNotified      = "notified"
	LogStep          = "step"
	LogSink          = "sink"
	LogLedgerSize    = "ledgerSize"
	LogInterval      = "interval"
	LogLastCycle     = "lastCycle"
	LogLevelFallback = zerolog.InfoLevel
)
