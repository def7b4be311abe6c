package feeds

import (
	"fmt"
	"sale-alerts/models/entities"
	"sale-alerts/repositories/listings"
)

// Classify walks listings newest-first and returns the ones the ledger has never seen, in the
// same order. The first known id is the frontier: nothing past it is examined.
// Each new listing is appended to the ledger as soon as it is found.
func Classify(ledger listings.Ledger, parsed []entities.Listing) ([]entities.Listing, error) {
	fresh := make([]entities.Listing, 0, len(parsed))

	for _, listing := range parsed {
		known, err := ledger.Contains(listing.ID)
		if err != nil {
			return fresh, fmt.Errorf("%w: lookup %s: %w", ErrStore, listing.ID, err)
		}

		if known {
			break
		}

		if err := ledger.Append(listing); err != nil {
			return fresh, fmt.Errorf("%w: append %s: %w", ErrStore, listing.ID, err)
		}

		fresh = append(fresh, listing)
	}

	return fresh, nil
}
