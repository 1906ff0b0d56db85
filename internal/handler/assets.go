package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
	"github.com/btspl-dev/asset-tracker/backend/internal/repository"
)

const dateLayout = "2006-01-02"

// checkTaxonomy enforces the dropdown taxonomy at input time only. An empty
// category is free text until administrators curate it, and values already
// stored on assets are never re-checked.
func (h *Handler) checkTaxonomy(category domain.DropdownCategory, value string) error {
	if value == "" {
		return nil
	}
	if len(h.repository.GetDropdownOptions(category)) == 0 {
		return nil
	}
	if h.repository.HasDropdownValue(category, value) {
		return nil
	}
	return fmt.Errorf("%q is not a configured %s option", value, category)
}

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	assets := h.repository.GetAllAssets()
	h.successResponse(w, r, "assets retrieved", assets)
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset := r.Context().Value(AssetCtx).(*domain.Asset)
	h.successResponse(w, r, "asset retrieved", asset)
}

type assetRequest struct {
	AssetCode         string   `json:"assetCode" validate:"required"`
	AssetType         string   `json:"assetType" validate:"required,oneof=Laptop Desktop Printer Keyboard Mouse Headphone Monitor 'Keyboard + Mouse Combo'"`
	Department        string   `json:"department" validate:"required"`
	Status            string   `json:"status" validate:"required,oneof=Active Inactive Reserved"`
	Action            string   `json:"action"`
	Brand             string   `json:"brand" validate:"required"`
	Model             string   `json:"model" validate:"required"`
	SerialNo          string   `json:"serialNo" validate:"required"`
	HostName          string   `json:"hostName" validate:"required"`
	BriefConfig       string   `json:"briefConfig" validate:"required"`
	Ownership         string   `json:"ownership" validate:"required,oneof=Owned Leased"`
	PurchaseVendor    string   `json:"purchaseVendor" validate:"required"`
	DateOfPurchase    string   `json:"dateOfPurchase" validate:"required,datetime=2006-01-02"`
	PurchasePrice     *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	CurrentValue      *float64 `json:"currentValue" validate:"omitempty,gte=0"`
	DepreciationRate  *float64 `json:"depreciationRate" validate:"omitempty,gte=0,lte=100"`
	WarrantyEndDate   string   `json:"warrantyEndDate" validate:"required,datetime=2006-01-02"`
	WarrantyType      string   `json:"warrantyType" validate:"required,oneof=Warranty AMC Non-Warranty"`
	AMCStartDate      string   `json:"amcStartDate" validate:"omitempty,datetime=2006-01-02"`
	AMCEndDate        string   `json:"amcEndDate" validate:"omitempty,datetime=2006-01-02"`
	LeaseContractCode string   `json:"leaseContractCode" validate:"required_if=Ownership Leased"`
	PrimaryLocation   string   `json:"primaryLocation" validate:"required"`
	UserDepartment    string   `json:"userDepartment" validate:"required"`
	SubFunction       string   `json:"subFunction"`
}

func (h *Handler) checkAssetTaxonomies(req *assetRequest) error {
	checks := []struct {
		category domain.DropdownCategory
		value    string
	}{
		{domain.CategoryBrand, req.Brand},
		{domain.CategoryModel, req.Model},
		{domain.CategoryPurchaseVendor, req.PurchaseVendor},
		{domain.CategoryAction, req.Action},
		{domain.CategoryDepartment, req.Department},
		{domain.CategoryLocation, req.PrimaryLocation},
	}
	for _, check := range checks {
		if err := h.checkTaxonomy(check.category, check.value); err != nil {
			return err
		}
	}
	return nil
}

func parseDate(value string) time.Time {
	t, _ := time.Parse(dateLayout, value)
	return t
}

func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t := parseDate(value)
	return &t
}

// applyAssetRequest writes the validated request onto the asset. AMC dates
// are only meaningful for AMC coverage and are dropped otherwise.
func applyAssetRequest(asset *domain.Asset, req *assetRequest) {
	asset.AssetCode = req.AssetCode
	asset.AssetType = domain.AssetType(req.AssetType)
	asset.Department = req.Department
	asset.Status = domain.AssetStatus(req.Status)
	asset.Action = req.Action
	asset.Brand = req.Brand
	asset.Model = req.Model
	asset.SerialNo = req.SerialNo
	asset.HostName = req.HostName
	asset.BriefConfig = req.BriefConfig
	asset.Ownership = domain.Ownership(req.Ownership)
	asset.PurchaseVendor = req.PurchaseVendor
	asset.DateOfPurchase = parseDate(req.DateOfPurchase)
	if req.PurchasePrice != nil {
		asset.PurchasePrice = *req.PurchasePrice
	}
	if req.CurrentValue != nil {
		asset.CurrentValue = *req.CurrentValue
	}
	if req.DepreciationRate != nil {
		asset.DepreciationRate = *req.DepreciationRate
	}
	asset.WarrantyEndDate = parseDate(req.WarrantyEndDate)
	asset.WarrantyType = domain.WarrantyType(req.WarrantyType)
	if asset.WarrantyType == domain.WarrantyTypeAMC {
		asset.AMCStartDate = parseOptionalDate(req.AMCStartDate)
		asset.AMCEndDate = parseOptionalDate(req.AMCEndDate)
	} else {
		asset.AMCStartDate = nil
		asset.AMCEndDate = nil
	}
	if asset.Ownership == domain.OwnershipLeased {
		asset.LeaseContractCode = req.LeaseContractCode
	} else {
		asset.LeaseContractCode = ""
	}
	asset.PrimaryLocation = req.PrimaryLocation
	asset.UserDepartment = req.UserDepartment
	asset.SubFunction = req.SubFunction
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.checkAssetTaxonomies(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	asset := &domain.Asset{}
	applyAssetRequest(asset, &req)

	if err := h.repository.CreateAsset(asset); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAssetCode),
			errors.Is(err, repository.ErrFuturePurchaseDate),
			errors.Is(err, repository.ErrLeaseCodeRequired):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "asset created", asset)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	// required string fields stay required on a partial update: an explicit
	// "" must be rejected, not applied
	var req struct {
		AssetCode         *string  `json:"assetCode" validate:"omitempty,min=1"`
		AssetType         *string  `json:"assetType" validate:"omitempty,oneof=Laptop Desktop Printer Keyboard Mouse Headphone Monitor 'Keyboard + Mouse Combo'"`
		Department        *string  `json:"department" validate:"omitempty,min=1"`
		Status            *string  `json:"status" validate:"omitempty,oneof=Active Inactive Reserved"`
		Action            *string  `json:"action"`
		Brand             *string  `json:"brand" validate:"omitempty,min=1"`
		Model             *string  `json:"model" validate:"omitempty,min=1"`
		SerialNo          *string  `json:"serialNo" validate:"omitempty,min=1"`
		HostName          *string  `json:"hostName" validate:"omitempty,min=1"`
		BriefConfig       *string  `json:"briefConfig" validate:"omitempty,min=1"`
		Ownership         *string  `json:"ownership" validate:"omitempty,oneof=Owned Leased"`
		PurchaseVendor    *string  `json:"purchaseVendor" validate:"omitempty,min=1"`
		DateOfPurchase    *string  `json:"dateOfPurchase" validate:"omitempty,datetime=2006-01-02"`
		PurchasePrice     *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
		CurrentValue      *float64 `json:"currentValue" validate:"omitempty,gte=0"`
		DepreciationRate  *float64 `json:"depreciationRate" validate:"omitempty,gte=0,lte=100"`
		WarrantyEndDate   *string  `json:"warrantyEndDate" validate:"omitempty,datetime=2006-01-02"`
		WarrantyType      *string  `json:"warrantyType" validate:"omitempty,oneof=Warranty AMC Non-Warranty"`
		AMCStartDate      *string  `json:"amcStartDate" validate:"omitempty,datetime=2006-01-02"`
		AMCEndDate        *string  `json:"amcEndDate" validate:"omitempty,datetime=2006-01-02"`
		LeaseContractCode *string  `json:"leaseContractCode"`
		PrimaryLocation   *string  `json:"primaryLocation" validate:"omitempty,min=1"`
		UserDepartment    *string  `json:"userDepartment" validate:"omitempty,min=1"`
		SubFunction       *string  `json:"subFunction"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	if req.AssetCode != nil {
		asset.AssetCode = *req.AssetCode
	}
	if req.AssetType != nil {
		asset.AssetType = domain.AssetType(*req.AssetType)
	}
	if req.Department != nil {
		if err := h.checkTaxonomy(domain.CategoryDepartment, *req.Department); err != nil {
			h.badRequest(w, r, err)
			return
		}
		asset.Department = *req.Department
	}
	if req.Status != nil {
		asset.Status = domain.AssetStatus(*req.Status)
	}
	if req.Action != nil {
		if err := h.checkTaxonomy(domain.CategoryAction, *req.Action); err != nil {
			h.badRequest(w, r, err)
			return
		}
		asset.Action = *req.Action
	}
	if req.Brand != nil {
		if err := h.checkTaxonomy(domain.CategoryBrand, *req.Brand); err != nil {
			h.badRequest(w, r, err)
			return
		}
		asset.Brand = *req.Brand
	}
	if req.Model != nil {
		if err := h.checkTaxonomy(domain.CategoryModel, *req.Model); err != nil {
			h.badRequest(w, r, err)
			return
		}
		asset.Model = *req.Model
	}
	if req.SerialNo != nil {
		asset.SerialNo = *req.SerialNo
	}
	if req.HostName != nil {
		asset.HostName = *req.HostName
	}
	if req.BriefConfig != nil {
		asset.BriefConfig = *req.BriefConfig
	}
	if req.Ownership != nil {
		asset.Ownership = domain.Ownership(*req.Ownership)
	}
	if req.PurchaseVendor != nil {
		if err := h.checkTaxonomy(domain.CategoryPurchaseVendor, *req.PurchaseVendor); err != nil {
			h.badRequest(w, r, err)
			return
		}
		asset.PurchaseVendor = *req.PurchaseVendor
	}
	if req.DateOfPurchase != nil {
		asset.DateOfPurchase = parseDate(*req.DateOfPurchase)
	}
	if req.PurchasePrice != nil {
		asset.PurchasePrice = *req.PurchasePrice
	}
	if req.CurrentValue != nil {
		asset.CurrentValue = *req.CurrentValue
	}
	if req.DepreciationRate != nil {
		asset.DepreciationRate = *req.DepreciationRate
	}
	if req.WarrantyEndDate != nil {
		asset.WarrantyEndDate = parseDate(*req.WarrantyEndDate)
	}
	if req.WarrantyType != nil {
		asset.WarrantyType = domain.WarrantyType(*req.WarrantyType)
	}
	if req.AMCStartDate != nil {
		asset.AMCStartDate = parseOptionalDate(*req.AMCStartDate)
	}
	if req.AMCEndDate != nil {
		asset.AMCEndDate = parseOptionalDate(*req.AMCEndDate)
	}
	if req.LeaseContractCode != nil {
		asset.LeaseContractCode = *req.LeaseContractCode
	}
	if req.PrimaryLocation != nil {
		if err := h.checkTaxonomy(domain.CategoryLocation, *req.PrimaryLocation); err != nil {
			h.badRequest(w, r, err)
			return
		}
		asset.PrimaryLocation = *req.PrimaryLocation
	}
	if req.UserDepartment != nil {
		asset.UserDepartment = *req.UserDepartment
	}
	if req.SubFunction != nil {
		asset.SubFunction = *req.SubFunction
	}

	if asset.WarrantyType != domain.WarrantyTypeAMC {
		asset.AMCStartDate = nil
		asset.AMCEndDate = nil
	}
	if asset.Ownership != domain.OwnershipLeased {
		asset.LeaseContractCode = ""
	}

	if err := h.repository.UpdateAsset(asset); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAssetCode),
			errors.Is(err, repository.ErrFuturePurchaseDate),
			errors.Is(err, repository.ErrLeaseCodeRequired):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "asset not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "asset updated", asset)
}

func (h *Handler) RemoveAsset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	removed, err := h.repository.RemoveAsset(asset.ID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRemovalReasonRequired),
			errors.Is(err, repository.ErrAssetAlreadyRemoved):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "asset not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "asset removed", removed)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	if err := h.repository.DeleteAsset(asset.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "asset not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "asset deleted", nil)
}

func (h *Handler) AssignAsset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID         string `json:"employeeId"`
		PrimaryLocation    string `json:"primaryLocation" validate:"required_with=EmployeeID"`
		UserDepartment     string `json:"userDepartment" validate:"required_with=EmployeeID"`
		SubFunction        string `json:"subFunction"`
		AssignedDate       string `json:"assignedDate" validate:"omitempty,datetime=2006-01-02"`
		PhysicallyVerified string `json:"physicallyVerified"`
		AssetRemark        string `json:"assetRemark"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.checkTaxonomy(domain.CategoryLocation, req.PrimaryLocation); err != nil {
		h.badRequest(w, r, err)
		return
	}

	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	assigned, err := h.repository.AssignAsset(asset.ID, req.EmployeeID, repository.AssignmentFields{
		PrimaryLocation:    req.PrimaryLocation,
		UserDepartment:     req.UserDepartment,
		SubFunction:        req.SubFunction,
		AssignedDate:       parseOptionalDate(req.AssignedDate),
		PhysicallyVerified: req.PhysicallyVerified,
		AssetRemark:        req.AssetRemark,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "asset or employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "asset assignment updated", assigned)
}
