package feeds

import (
	"fmt"
	"sale-alerts/models/entities"
	"sale-alerts/utils/dates"
	"time"

	"github.com/mmcdole/gofeed"
)

// Parse turns a raw feed body into listings, in feed order.
// Entries are never dropped: odd titles or bodies fall back to sentinel values.
func Parse(raw string) ([]entities.Listing, error) {
	feed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	listings := make([]entities.Listing, 0, len(feed.Items))
	for _, item := range feed.Items {
		listings = append(listings, toListing(item))
	}

	return listings, nil
}

func toListing(item *gofeed.Item) entities.Listing {
	fields := ParseTitle(item.Title)

	content := item.Content
	if content == "" {
		content = item.Description
	}

	return entities.Listing{
		ID:          item.GUID,
		Title:       fields.Title,
		Price:       fields.Price,
		Type:        fields.Type,
		URL:         extractProductURL(content),
		RedditLink:  item.Link,
		PublishedAt: publishedAt(item),
	}
}

func publishedAt(item *gofeed.Item) time.Time {
	if published, err := dates.ParseFeedTimestamp(item.Published); err == nil {
		return published
	}

	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC().Truncate(time.Second)
	}

	return time.Time{}
}
