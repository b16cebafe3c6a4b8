package domain

import "time"

// ImportSlip records one goods-receiving event. Applying a slip
// increments product stock; deleting a slip removes the record only.
type ImportSlip struct {
	ID         string           `json:"id"`
	Code       string           `json:"code"`
	Supplier   string           `json:"supplier"`
	Date       string           `json:"date"`
	Lines      []ImportSlipLine `json:"items"`
	TotalValue int64            `json:"totalValue"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type ImportSlipLine struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	ImportPriceVND int64  `json:"importPrice"`
	Quantity       int    `json:"quantity"`
}
