package feedsources

import (
	"sale-alerts/models/entities"
	"sale-alerts/utils/databases"
)

type Repository interface {
	Get(url string) (entities.FeedSource, error)
	Save(feedSource entities.FeedSource) error
}

type Impl struct {
	db databases.SqlConnection
}
