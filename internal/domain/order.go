package domain

import "time"

type OrderStatus string

const (
	OrderCompleted OrderStatus = "completed"
	OrderRefunded  OrderStatus = "refunded"
)

// Order is the immutable snapshot produced at the checkout commit
// point. Lines and totals never change after creation; only Status may
// move, and only completed -> refunded.
type Order struct {
	ID             string      `json:"id"`
	Code           string      `json:"code"`
	CustomerID     string      `json:"customerId"`
	CustomerName   string      `json:"customerName"`
	CustomerPhone  string      `json:"customerPhone,omitempty"`
	Lines          []OrderLine `json:"items"`
	SubtotalVND    int64       `json:"subtotal"`
	TaxVND         int64       `json:"tax"`
	TaxRatePercent int64       `json:"taxRate"`
	TotalVND       int64       `json:"total"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// OrderLine carries the product name and unit price as they were at
// commit time, not live references.
type OrderLine struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	UnitPriceVND int64  `json:"price"`
	Quantity     int    `json:"quantity"`
}

// CartLine is one (product, quantity) pairing inside a terminal cart.
// Name, price, image and stock are snapshotted when the line is first
// added so a later catalog edit cannot alter an in-progress sale.
type CartLine struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceVND   int64  `json:"price"`
	ImageURL   string `json:"image,omitempty"`
	StockAtAdd int    `json:"stock"`
	Quantity   int    `json:"quantity"`
}
