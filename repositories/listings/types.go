package listings

import (
	"errors"
	"sale-alerts/models/entities"
	"sale-alerts/utils/databases"

	"gorm.io/gorm"
)

var ErrDuplicateListing = errors.New("listing already stored")

type Repository interface {
	Begin() (Ledger, error)
	FindByID(id string) (entities.Listing, error)
	Count() (int64, error)
}

// Ledger is a view of the listings table bound to one transaction.
// Nothing appended through it is visible outside until Commit.
type Ledger interface {
	Contains(id string) (bool, error)
	Append(listing entities.Listing) error
	Commit() error
	Rollback() error
}

type Impl struct {
	db databases.SqlConnection
}

type ledgerImpl struct {
	tx   *gorm.DB
	done bool
}
