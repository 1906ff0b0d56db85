package domain

type DropdownCategory string

const (
	CategoryAssetCode      DropdownCategory = "assetCode"
	CategoryAssetType      DropdownCategory = "assetType"
	CategoryAction         DropdownCategory = "action"
	CategoryBrand          DropdownCategory = "brand"
	CategoryModel          DropdownCategory = "model"
	CategorySerialNo       DropdownCategory = "serialNo"
	CategoryHostName       DropdownCategory = "hostName"
	CategoryBriefConfig    DropdownCategory = "briefConfig"
	CategoryPurchaseVendor DropdownCategory = "purchaseVendor"
	CategoryDepartment     DropdownCategory = "department"
	CategoryLocation       DropdownCategory = "location"
	CategorySubFunction    DropdownCategory = "subFunction"
)

// DropdownCategories lists every taxonomy category administrators can manage.
var DropdownCategories = []DropdownCategory{
	CategoryAssetCode,
	CategoryAssetType,
	CategoryAction,
	CategoryBrand,
	CategoryModel,
	CategorySerialNo,
	CategoryHostName,
	CategoryBriefConfig,
	CategoryPurchaseVendor,
	CategoryDepartment,
	CategoryLocation,
	CategorySubFunction,
}

func ValidDropdownCategory(c DropdownCategory) bool {
	for _, category := range DropdownCategories {
		if category == c {
			return true
		}
	}
	return false
}

type DropdownOption struct {
	ID       string           `json:"id"`
	Category DropdownCategory `json:"category"`
	Value    string           `json:"value"`
}
