package domain

import "time"

// Product is a sellable catalog item. Prices are whole đồng.
type Product struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	SKU         string    `json:"sku,omitempty"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	PriceVND    int64     `json:"price"`
	CostVND     int64     `json:"importPrice"`
	Stock       int       `json:"stock"`
	Sold        int       `json:"sold"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InventorySummary aggregates the dashboard's stock view. StockValue is
// valued at import price.
type InventorySummary struct {
	TotalStock int       `json:"totalStock"`
	StockValue int64     `json:"stockValue"`
	LowStock   []Product `json:"lowStock"`
}
