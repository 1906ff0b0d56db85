package domain

type TypeBreakdown struct {
	Type  string  `json:"type"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type DepartmentBreakdown struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	Value      float64 `json:"value"`
}

type StatusBreakdown struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type OwnershipBreakdown struct {
	Ownership string `json:"ownership"`
	Count     int    `json:"count"`
}

type LocationBreakdown struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// DashboardStats is the read-only dashboard view derived from the asset
// registry. Unless noted otherwise, totals cover non-removed assets only.
type DashboardStats struct {
	TotalAssets       int     `json:"totalAssets"`
	ActiveAssets      int     `json:"activeAssets"`
	InactiveAssets    int     `json:"inactiveAssets"`
	ReservedAssets    int     `json:"reservedAssets"`
	RemovedAssets     int     `json:"removedAssets"`
	UnderWarranty     int     `json:"underWarranty"`
	ExpiredWarranty   int     `json:"expiredWarranty"`
	ExpiringWarranty  int     `json:"expiringWarranty"`
	RequiresAction    int     `json:"requiresAction"`
	AssignedAssets    int     `json:"assignedAssets"`
	UnassignedAssets  int     `json:"unassignedAssets"`
	TotalAssetValue   float64 `json:"totalAssetValue"`
	TotalDepreciation float64 `json:"totalDepreciation"`

	AssetsByType       []TypeBreakdown       `json:"assetsByType"`
	AssetsByDepartment []DepartmentBreakdown `json:"assetsByDepartment"`
	// AssetsByStatus covers the whole registry, removed assets included.
	AssetsByStatus    []StatusBreakdown    `json:"assetsByStatus"`
	AssetsByOwnership []OwnershipBreakdown `json:"assetsByOwnership"`
	AssetsByLocation  []LocationBreakdown  `json:"assetsByLocation"`
}
