package importslip

import (
	"context"

	"shopadmin/internal/domain"
)

type Repository interface {
	// Create stores the slip and increments stock for every line in one
	// transaction. A line referencing an unknown product aborts with
	// domain.ErrNotFound.
	Create(ctx context.Context, s domain.ImportSlip) (*domain.ImportSlip, error)
	GetByID(ctx context.Context, id string) (*domain.ImportSlip, error)
	List(ctx context.Context, search string) ([]domain.ImportSlip, error)
	// Delete removes the record only; stock added by the slip stays.
	Delete(ctx context.Context, id string) error
}
