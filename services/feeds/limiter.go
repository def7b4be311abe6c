package feeds

import (
	"sale-alerts/models/constants"
	"sale-alerts/models/entities"
)

// SelectForNotification picks which new listings (newest-first) get a notification and returns
// them oldest-first. A burst of NotifyBurstThreshold or more is cut down to the NotifyBurstKeep newest.
func SelectForNotification(fresh []entities.Listing) []entities.Listing {
	selected := fresh
	if len(fresh) >= constants.NotifyBurstThreshold {
		selected = fresh[:constants.NotifyBurstKeep]
	}

	ordered := make([]entities.Listing, 0, len(selected))
	for i := len(selected) - 1; i >= 0; i-- {
		ordered = append(ordered, selected[i])
	}

	return ordered
}
