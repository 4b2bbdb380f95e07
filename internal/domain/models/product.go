package models

type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	StockQty int     `json:"stockQty"`
	Status   string  `json:"status"`
}

type ProductPayload struct {
	Name     string  `json:"name" binding:"required"`
	SKU      string  `json:"sku" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	StockQty int     `json:"stockQty"`
	Status   string  `json:"status"`
}
