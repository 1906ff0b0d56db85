package derive

import (
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

// DashboardStats aggregates the current asset collection into the dashboard
// view. It never mutates its input. Removed assets are excluded from every
// total and breakdown except the status breakdown and the removed counter.
// Grouped breakdowns keep the first-occurrence order of the input; sorting
// for display is the consumer's concern.
func DashboardStats(assets []*domain.Asset) domain.DashboardStats {
	stats := domain.DashboardStats{
		AssetsByType:       make([]domain.TypeBreakdown, 0),
		AssetsByDepartment: make([]domain.DepartmentBreakdown, 0),
		AssetsByStatus:     make([]domain.StatusBreakdown, 0),
		AssetsByOwnership:  make([]domain.OwnershipBreakdown, 0),
		AssetsByLocation:   make([]domain.LocationBreakdown, 0),
	}

	typeIdx := make(map[domain.AssetType]int)
	departmentIdx := make(map[string]int)
	statusIdx := make(map[domain.AssetStatus]int)
	ownershipIdx := make(map[domain.Ownership]int)
	locationIdx := make(map[string]int)

	var totalPurchaseValue float64

	for _, asset := range assets {
		if i, ok := statusIdx[asset.Status]; ok {
			stats.AssetsByStatus[i].Count++
		} else {
			statusIdx[asset.Status] = len(stats.AssetsByStatus)
			stats.AssetsByStatus = append(stats.AssetsByStatus, domain.StatusBreakdown{Status: string(asset.Status), Count: 1})
		}

		switch asset.Status {
		case domain.AssetStatusActive:
			stats.ActiveAssets++
		case domain.AssetStatusInactive:
			stats.InactiveAssets++
		case domain.AssetStatusReserved:
			stats.ReservedAssets++
		case domain.AssetStatusRemoved:
			stats.RemovedAssets++
		}

		if asset.Removed() {
			continue
		}

		stats.TotalAssets++
		stats.TotalAssetValue += asset.CurrentValue
		totalPurchaseValue += asset.PurchasePrice

		if asset.Assigned() {
			stats.AssignedAssets++
		} else {
			stats.UnassignedAssets++
		}

		switch asset.WarrantyStatus {
		case domain.WarrantyStatusActive:
			stats.UnderWarranty++
		case domain.WarrantyStatusExpired:
			stats.ExpiredWarranty++
		case domain.WarrantyStatusExpiringSoon:
			stats.ExpiringWarranty++
		}

		if asset.Action != "" {
			stats.RequiresAction++
		}

		if i, ok := typeIdx[asset.AssetType]; ok {
			stats.AssetsByType[i].Count++
			stats.AssetsByType[i].Value += asset.CurrentValue
		} else {
			typeIdx[asset.AssetType] = len(stats.AssetsByType)
			stats.AssetsByType = append(stats.AssetsByType, domain.TypeBreakdown{Type: string(asset.AssetType), Count: 1, Value: asset.CurrentValue})
		}

		if i, ok := departmentIdx[asset.Department]; ok {
			stats.AssetsByDepartment[i].Count++
			stats.AssetsByDepartment[i].Value += asset.CurrentValue
		} else {
			departmentIdx[asset.Department] = len(stats.AssetsByDepartment)
			stats.AssetsByDepartment = append(stats.AssetsByDepartment, domain.DepartmentBreakdown{Department: asset.Department, Count: 1, Value: asset.CurrentValue})
		}

		if i, ok := ownershipIdx[asset.Ownership]; ok {
			stats.AssetsByOwnership[i].Count++
		} else {
			ownershipIdx[asset.Ownership] = len(stats.AssetsByOwnership)
			stats.AssetsByOwnership = append(stats.AssetsByOwnership, domain.OwnershipBreakdown{Ownership: string(asset.Ownership), Count: 1})
		}

		if i, ok := locationIdx[asset.PrimaryLocation]; ok {
			stats.AssetsByLocation[i].Count++
		} else {
			locationIdx[asset.PrimaryLocation] = len(stats.AssetsByLocation)
			stats.AssetsByLocation = append(stats.AssetsByLocation, domain.LocationBreakdown{Location: asset.PrimaryLocation, Count: 1})
		}
	}

	stats.TotalDepreciation = totalPurchaseValue - stats.TotalAssetValue

	return stats
}
