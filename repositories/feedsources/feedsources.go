package feedsources

import (
	"sale-alerts/models/entities"
	"sale-alerts/utils/databases"

	"gorm.io/gorm/clause"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) Get(url string) (entities.FeedSource, error) {
	var feedSource entities.FeedSource
	result := repo.db.GetDB().Where("url = ?", url).First(&feedSource)

	return feedSource, result.Error
}

func (repo *Impl) Save(feedSource entities.FeedSource) error {
	return repo.db.GetDB().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{"frontier_id", "last_update"}),
		}).
		Create(&feedSource).
		Error
}
