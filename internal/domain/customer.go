package domain

import "time"

// GuestCode is the code of the walk-in sentinel customer seeded into
// every installation. It is always resolvable and never deleted.
const GuestCode = "GUEST"

type Customer struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerSummary is the dashboard's per-customer purchase aggregate,
// computed over completed orders only.
type CustomerSummary struct {
	CustomerID  string    `json:"customerId"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  int64     `json:"totalSpent"`
	LastOrder   time.Time `json:"lastOrder"`
}
