package stats

import (
	"context"
	"strings"

	"shopadmin/internal/domain"
	"shopadmin/internal/repository/order"
	"shopadmin/internal/repository/product"
)

// LowStockThreshold marks products the dashboard flags for reordering.
const LowStockThreshold = 5

// Service computes the dashboard aggregates.
type Service struct {
	products product.Repository
	orders   order.Repository
}

func New(products product.Repository, orders order.Repository) *Service {
	return &Service{products: products, orders: orders}
}

func (s *Service) Inventory(ctx context.Context) (*domain.InventorySummary, error) {
	return s.products.InventorySummary(ctx, LowStockThreshold)
}

func (s *Service) Customers(ctx context.Context, search string) ([]domain.CustomerSummary, error) {
	return s.orders.CustomerSummaries(ctx, strings.TrimSpace(search))
}
