package models

// Asset is a tracked piece of company equipment.
type Asset struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	AssetTag      string  `json:"assetTag"`
	SerialNumber  string  `json:"serialNumber"`
	Category      string  `json:"category,omitempty"`
	Status        string  `json:"status"`
	AssignedTo    string  `json:"assignedTo,omitempty"`
	PurchaseDate  string  `json:"purchaseDate,omitempty"`
	PurchasePrice float64 `json:"purchasePrice"`
	Currency      string  `json:"currency"`
	CompanyID     int64   `json:"companyId,omitempty"`
}

// AssetPayload is the create/update request body.
type AssetPayload struct {
	Name          string  `json:"name" binding:"required"`
	AssetTag      string  `json:"assetTag" binding:"required"`
	SerialNumber  string  `json:"serialNumber"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	AssignedTo    string  `json:"assignedTo"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchasePrice float64 `json:"purchasePrice"`
	Currency      string  `json:"currency"`
	CompanyID     int64   `json:"companyId"`
}
