package dates

import (
	"sale-alerts/models/constants"
	"time"
)

// ParseFeedTimestamp reads the leading "YYYY-MM-DDTHH:MM:SS" of a feed timestamp as UTC,
// ignoring fractional seconds and zone suffix.
func ParseFeedTimestamp(raw string) (time.Time, error) {
	n := len(constants.FeedTimestampLayout)
	if len(raw) > n {
		raw = raw[:n]
	}

	return time.ParseInLocation(constants.FeedTimestampLayout, raw, time.UTC)
}

// LoadLocation resolves an IANA zone name; "" and "Local" map to the process zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}

	return time.LoadLocation(name)
}

// FormatLocal renders a naive UTC timestamp in loc for humans.
func FormatLocal(utc time.Time, loc *time.Location) string {
	return time.Date(utc.Year(), utc.Month(), utc.Day(), utc.Hour(), utc.Minute(), utc.Second(), 0, time.UTC).
		In(loc).
		Format(constants.NotificationDateFormat)
}
