package repository

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/btspl-dev/asset-tracker/backend/internal/derive"
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

// AssignmentFields carries the assignment details captured alongside the
// employee reference. The employee snapshot itself (name, email, type) is
// looked up from the directory at assign time and deliberately never
// refreshed afterwards.
type AssignmentFields struct {
	PrimaryLocation    string
	UserDepartment     string
	SubFunction        string
	AssignedDate       *time.Time
	PhysicallyVerified string
	AssetRemark        string
}

func cloneAsset(a *domain.Asset) *domain.Asset {
	clone := *a
	if a.AMCStartDate != nil {
		t := *a.AMCStartDate
		clone.AMCStartDate = &t
	}
	if a.AMCEndDate != nil {
		t := *a.AMCEndDate
		clone.AMCEndDate = &t
	}
	if a.AssignedDate != nil {
		t := *a.AssignedDate
		clone.AssignedDate = &t
	}
	if a.RemovedDate != nil {
		t := *a.RemovedDate
		clone.RemovedDate = &t
	}
	return &clone
}

// assetCodeInUse reports whether the code is carried by a non-removed asset
// other than excludeID. Removed assets release their code for reuse.
// Caller must hold assetsMu.
func (r *Repository) assetCodeInUse(code, excludeID string) bool {
	for _, asset := range r.assets {
		if asset.ID == excludeID || asset.Removed() {
			continue
		}
		if strings.EqualFold(asset.AssetCode, code) {
			return true
		}
	}
	return false
}

func (r *Repository) checkAssetRules(asset *domain.Asset) error {
	if asset.DateOfPurchase.After(time.Now()) {
		return ErrFuturePurchaseDate
	}
	if asset.Ownership == domain.OwnershipLeased && asset.LeaseContractCode == "" {
		return ErrLeaseCodeRequired
	}
	return nil
}

// CreateAsset registers a new asset. The id, display sequence number,
// timestamps and warranty status are assigned here; whatever the caller
// placed in those fields is overwritten.
func (r *Repository) CreateAsset(asset *domain.Asset) error {
	if err := r.checkAssetRules(asset); err != nil {
		return err
	}

	r.assetsMu.Lock()
	defer r.assetsMu.Unlock()

	if r.assetCodeInUse(asset.AssetCode, "") {
		return ErrDuplicateAssetCode
	}

	now := time.Now()
	asset.ID = uuid.NewString()
	asset.SNo = r.nextSNo
	r.nextSNo++
	asset.CreatedAt = now
	asset.UpdatedAt = now
	asset.WarrantyStatus = derive.WarrantyStatusOn(asset.WarrantyEndDate, now, r.cfg.Warranty.ExpiryHorizonDays)
	asset.RemovedDate = nil
	asset.RemovalReason = ""

	r.assets[asset.ID] = cloneAsset(asset)

	return nil
}

// UpdateAsset replaces the stored record with the merged record the caller
// built from the existing asset. Identity and creation metadata are kept
// from the stored record; the warranty status is recomputed.
func (r *Repository) UpdateAsset(asset *domain.Asset) error {
	if err := r.checkAssetRules(asset); err != nil {
		return err
	}

	r.assetsMu.Lock()
	defer r.assetsMu.Unlock()

	existing, ok := r.assets[asset.ID]
	if !ok {
		return ErrNotFound
	}

	if r.assetCodeInUse(asset.AssetCode, asset.ID) {
		return ErrDuplicateAssetCode
	}

	now := time.Now()
	asset.SNo = existing.SNo
	asset.CreatedAt = existing.CreatedAt
	asset.UpdatedAt = now
	asset.WarrantyStatus = derive.WarrantyStatusOn(asset.WarrantyEndDate, now, r.cfg.Warranty.ExpiryHorizonDays)

	r.assets[asset.ID] = cloneAsset(asset)

	return nil
}

// RemoveAsset performs the soft-removal transition. Removing an asset that
// is already Removed fails instead of restamping the removal metadata.
func (r *Repository) RemoveAsset(id, reason string) (*domain.Asset, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrRemovalReasonRequired
	}

	r.assetsMu.Lock()
	defer r.assetsMu.Unlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	if asset.Removed() {
		return nil, ErrAssetAlreadyRemoved
	}

	now := time.Now()
	removedDate := derive.StartOfDay(now)
	asset.Status = domain.AssetStatusRemoved
	asset.RemovedDate = &removedDate
	asset.RemovalReason = reason
	asset.UpdatedAt = now

	return cloneAsset(asset), nil
}

// DeleteAsset hard-deletes the record. There is no referential guard and no
// way back.
func (r *Repository) DeleteAsset(id string) error {
	r.assetsMu.Lock()
	defer r.assetsMu.Unlock()

	if _, ok := r.assets[id]; !ok {
		return ErrNotFound
	}
	delete(r.assets, id)

	return nil
}

// AssignAsset sets or clears the employee reference on an asset. An empty
// employeeID clears the assignment and the snapshot fields. A non-empty
// employeeID must resolve in the directory; the snapshot is copied from the
// employee record as it is right now.
func (r *Repository) AssignAsset(id, employeeID string, fields AssignmentFields) (*domain.Asset, error) {
	var snapshot *domain.Employee
	if employeeID != "" {
		employee, err := r.GetEmployeeByID(employeeID)
		if err != nil {
			return nil, err
		}
		snapshot = employee
	}

	r.assetsMu.Lock()
	defer r.assetsMu.Unlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, ErrNotFound
	}

	if snapshot != nil {
		asset.EmployeeID = snapshot.ID
		asset.EmployeeName = snapshot.DisplayName
		asset.EmployeeEmail = snapshot.Email
		asset.EmployeeType = string(snapshot.EmployeeType)
		asset.PrimaryLocation = fields.PrimaryLocation
		asset.UserDepartment = fields.UserDepartment
		asset.SubFunction = fields.SubFunction
		asset.AssignedDate = fields.AssignedDate
		asset.PhysicallyVerified = fields.PhysicallyVerified
		asset.AssetRemark = fields.AssetRemark
	} else {
		asset.EmployeeID = ""
		asset.EmployeeName = ""
		asset.EmployeeEmail = ""
		asset.EmployeeType = ""
		asset.SubFunction = ""
		asset.AssignedDate = nil
		asset.PhysicallyVerified = ""
		asset.AssetRemark = ""
	}
	asset.UpdatedAt = time.Now()

	return cloneAsset(asset), nil
}

func (r *Repository) GetAssetByID(id string) (*domain.Asset, error) {
	r.assetsMu.RLock()
	defer r.assetsMu.RUnlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, ErrNotFound
	}

	return cloneAsset(asset), nil
}

// GetAllAssets returns the registry in display sequence order.
func (r *Repository) GetAllAssets() []*domain.Asset {
	r.assetsMu.RLock()
	defer r.assetsMu.RUnlock()

	assets := make([]*domain.Asset, 0, len(r.assets))
	for _, asset := range r.assets {
		assets = append(assets, cloneAsset(asset))
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].SNo < assets[j].SNo })

	return assets
}
