package constants

const (
	// Sentinels used when a feed entry title does not follow the "[TYPE] title $PRICE" convention.
	UnknownType  = "UNKNOWN"
	UnknownPrice = "$???"

	// At or above NotifyBurstThreshold new listings in one cycle, only the NotifyBurstKeep newest are sent.
	NotifyBurstThreshold = 15
	NotifyBurstKeep      = 5

	// Feed published timestamps are read on their first len(FeedTimestampLayout) characters.
	FeedTimestampLayout = "2006-01-02T15:04:05"

	// Rendering of the listing timestamp in notification bodies.
	NotificationDateFormat = "01/02/06 @ 03:04 PM"

	ExternalName = "Sale Alerts"
	Version      = "1.0.0"
)
