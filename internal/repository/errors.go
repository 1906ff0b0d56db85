package repository

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	ErrDuplicateAssetCode    = errors.New("asset code already in use")
	ErrFuturePurchaseDate    = errors.New("purchase date must not be in the future")
	ErrLeaseCodeRequired     = errors.New("lease contract code is required for leased assets")
	ErrAssetAlreadyRemoved   = errors.New("asset has already been removed")
	ErrRemovalReasonRequired = errors.New("removal reason is required")

	ErrDuplicateEmpNo    = errors.New("employee number already in use")
	ErrEmployeeHasAssets = errors.New("employee still has assigned assets")

	ErrInvalidCategory = errors.New("unknown dropdown category")
	ErrDuplicateValue  = errors.New("value already exists in this category")

	ErrDuplicateUsername = errors.New("username already in use")
)
