package derive

import (
	"time"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

// DefaultExpiryHorizonDays is how far ahead a warranty end date is flagged
// as expiring soon.
const DefaultExpiryHorizonDays = 30

// StartOfDay truncates a timestamp to midnight in its own location. All
// date-granular comparisons and stamps go through here.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WarrantyStatusOn classifies a warranty end date relative to now. The
// comparison is date-granular: an end date on the evaluation day is already
// Expired, and an end date exactly horizonDays away still counts as
// Expiring Soon.
func WarrantyStatusOn(warrantyEnd, now time.Time, horizonDays int) domain.WarrantyStatus {
	if horizonDays <= 0 {
		horizonDays = DefaultExpiryHorizonDays
	}

	today := StartOfDay(now)
	end := StartOfDay(warrantyEnd)

	switch {
	case !end.After(today):
		return domain.WarrantyStatusExpired
	case !end.After(today.AddDate(0, 0, horizonDays)):
		return domain.WarrantyStatusExpiringSoon
	default:
		return domain.WarrantyStatusActive
	}
}

// ExpiringAssets returns the non-removed assets whose warranty is expired or
// about to expire on the given day, in registry order.
func ExpiringAssets(assets []*domain.Asset, now time.Time, horizonDays int) []*domain.Asset {
	expiring := make([]*domain.Asset, 0)
	for _, asset := range assets {
		if asset.Removed() {
			continue
		}
		switch WarrantyStatusOn(asset.WarrantyEndDate, now, horizonDays) {
		case domain.WarrantyStatusExpired, domain.WarrantyStatusExpiringSoon:
			expiring = append(expiring, asset)
		}
	}
	return expiring
}
