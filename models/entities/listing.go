package entities

import "time"

// Listing is one marketplace post read from the feed. Rows are append-only.
type Listing struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Price       string
	Type        string    `gorm:"column:type"`
	URL         string    `gorm:"column:url"`
	PublishedAt time.Time `gorm:"column:pubdate"`

	// Permalink of the feed entry, only carried to notifications.
	RedditLink string `gorm:"-"`
}

func (Listing) TableName() string {
	return "posts"
}
