package listings

import (
	"errors"
	"fmt"
	"sale-alerts/models/entities"
	"sale-alerts/utils/databases"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) Begin() (Ledger, error) {
	tx := repo.db.GetDB().Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin ledger transaction: %w", tx.Error)
	}

	return &ledgerImpl{tx: tx}, nil
}

func (repo *Impl) FindByID(id string) (entities.Listing, error) {
	var listing entities.Listing
	result := repo.db.GetDB().Where("id = ?", id).First(&listing)

	return listing, result.Error
}

func (repo *Impl) Count() (int64, error) {
	var count int64
	if err := repo.db.GetDB().Model(&entities.Listing{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return count, nil
}

func (ledger *ledgerImpl) Contains(id string) (bool, error) {
	var existing entities.Listing
	result := ledger.tx.Select("id").Where("id = ?", id).Take(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check listing existence: %w", result.Error)
	}

	return true, nil
}

func (ledger *ledgerImpl) Append(listing entities.Listing) error {
	result := ledger.tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&listing)
	if result.Error != nil {
		return fmt.Errorf("failed to create listing: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateListing, listing.ID)
	}

	return nil
}

func (ledger *ledgerImpl) Commit() error {
	if ledger.done {
		return nil
	}
	ledger.done = true

	return ledger.tx.Commit().Error
}

// Rollback is a no-op once the ledger is committed, so it can be deferred.
func (ledger *ledgerImpl) Rollback() error {
	if ledger.done {
		return nil
	}
	ledger.done = true

	return ledger.tx.Rollback().Error
}
