package order

import (
	"context"

	"shopadmin/internal/domain"
)

type Repository interface {
	// Create persists the order snapshot and decrements stock for every
	// line in one transaction. The display code and timestamp are
	// assigned here; domain.ErrInsufficientStock is returned (and
	// nothing committed) if any line exceeds the product's stock.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, search string) ([]domain.Order, error)
	// Refund flips a completed order to refunded and credits stock back
	// per line, atomically. A refunded order yields
	// domain.ErrAlreadyRefunded and no stock change.
	Refund(ctx context.Context, id string) (*domain.Order, error)
	CustomerSummaries(ctx context.Context, search string) ([]domain.CustomerSummary, error)
}
