package product

import (
	"context"

	"shopadmin/internal/domain"
)

type Repository interface {
	List(ctx context.Context, search, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	// Upsert inserts or updates by product code; used by the CSV importer.
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	InventorySummary(ctx context.Context, lowStockThreshold int) (*domain.InventorySummary, error)
}
