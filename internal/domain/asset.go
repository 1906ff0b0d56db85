package domain

import (
	"time"
)

type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "Active"
	AssetStatusInactive AssetStatus = "Inactive"
	AssetStatusReserved AssetStatus = "Reserved"
	AssetStatusRemoved  AssetStatus = "Removed"
)

type AssetType string

const (
	AssetTypeLaptop        AssetType = "Laptop"
	AssetTypeDesktop       AssetType = "Desktop"
	AssetTypePrinter       AssetType = "Printer"
	AssetTypeKeyboard      AssetType = "Keyboard"
	AssetTypeMouse         AssetType = "Mouse"
	AssetTypeHeadphone     AssetType = "Headphone"
	AssetTypeMonitor       AssetType = "Monitor"
	AssetTypeKeyboardMouse AssetType = "Keyboard + Mouse Combo"
)

type Ownership string

const (
	OwnershipOwned  Ownership = "Owned"
	OwnershipLeased Ownership = "Leased"
)

type WarrantyType string

const (
	WarrantyTypeWarranty    WarrantyType = "Warranty"
	WarrantyTypeAMC         WarrantyType = "AMC"
	WarrantyTypeNonWarranty WarrantyType = "Non-Warranty"
)

// WarrantyStatus is always derived from the warranty end date, never
// accepted from a caller.
type WarrantyStatus string

const (
	WarrantyStatusActive       WarrantyStatus = "Active"
	WarrantyStatusExpired      WarrantyStatus = "Expired"
	WarrantyStatusExpiringSoon WarrantyStatus = "Expiring Soon"
)

type Asset struct {
	ID                 string         `json:"id"`
	SNo                int            `json:"sNo"`
	AssetCode          string         `json:"assetCode"`
	AssetType          AssetType      `json:"assetType"`
	Department         string         `json:"department"`
	Status             AssetStatus    `json:"status"`
	Action             string         `json:"action,omitempty"`
	Brand              string         `json:"brand"`
	Model              string         `json:"model"`
	SerialNo           string         `json:"serialNo"`
	HostName           string         `json:"hostName"`
	BriefConfig        string         `json:"briefConfig"`
	Ownership          Ownership      `json:"ownership"`
	PurchaseVendor     string         `json:"purchaseVendor"`
	DateOfPurchase     time.Time      `json:"dateOfPurchase"`
	PurchasePrice      float64        `json:"purchasePrice,omitempty"`
	CurrentValue       float64        `json:"currentValue,omitempty"`
	DepreciationRate   float64        `json:"depreciationRate,omitempty"`
	WarrantyEndDate    time.Time      `json:"warrantyEndDate"`
	WarrantyType       WarrantyType   `json:"warrantyType"`
	AMCStartDate       *time.Time     `json:"amcStartDate,omitempty"`
	AMCEndDate         *time.Time     `json:"amcEndDate,omitempty"`
	WarrantyStatus     WarrantyStatus `json:"warrantyStatus"`
	LeaseContractCode  string         `json:"leaseContractCode,omitempty"`
	EmployeeID         string         `json:"employeeId,omitempty"`
	EmployeeName       string         `json:"employeeName,omitempty"`
	EmployeeEmail      string         `json:"employeeEmail,omitempty"`
	EmployeeType       string         `json:"employeeType,omitempty"`
	PrimaryLocation    string         `json:"primaryLocation"`
	UserDepartment     string         `json:"userDepartment"`
	SubFunction        string         `json:"subFunction,omitempty"`
	AssignedDate       *time.Time     `json:"assignedDate,omitempty"`
	PhysicallyVerified string         `json:"physicallyVerified,omitempty"`
	AssetRemark        string         `json:"assetRemark,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	RemovedDate        *time.Time     `json:"removedDate,omitempty"`
	RemovalReason      string         `json:"removalReason,omitempty"`
}

// Removed reports whether the asset has been soft-removed from the registry.
func (a *Asset) Removed() bool {
	return a.Status == AssetStatusRemoved
}

// Assigned reports whether the asset is currently assigned to an employee.
// An empty employee id is the single representation of "unassigned".
func (a *Asset) Assigned() bool {
	return a.EmployeeID != ""
}
