package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WarrantyAlertAsset struct {
	AssetCode       string `json:"assetCode"`
	AssetType       string `json:"assetType"`
	WarrantyEndDate string `json:"warrantyEndDate"`
	WarrantyStatus  string `json:"warrantyStatus"`
}

type WarrantyAlertMailData struct {
	DisplayName string               `json:"displayName"`
	Assets      []WarrantyAlertAsset `json:"assets"`
}
