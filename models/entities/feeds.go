package entities

import "time"

// FeedSource remembers the frontier of the polled feed and when it was last read successfully.
type FeedSource struct {
	URL        string `gorm:"primaryKey"`
	FrontierID string
	LastUpdate time.Time `gorm:"not null; default:current_timestamp"`
}
