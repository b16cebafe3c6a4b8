package order

import (
	"context"
	"io"
	"log"
	"strings"

	"shopadmin/internal/domain"
	"shopadmin/internal/repository/order"
)

// Service exposes the sales history and the refund path. Orders are
// created by the POS checkout, never here.
type Service struct {
	orders order.Repository
	logger *log.Logger
}

func New(orders order.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, logger: logger}
}

func (s *Service) List(ctx context.Context, search string) ([]domain.Order, error) {
	return s.orders.List(ctx, strings.TrimSpace(search))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Refund flips a completed order to refunded and restores stock. The
// repository rejects a second attempt with domain.ErrAlreadyRefunded.
func (s *Service) Refund(ctx context.Context, id string) (*domain.Order, error) {
	refunded, err := s.orders.Refund(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("order: refunded code=%s total=%d", refunded.Code, refunded.TotalVND)
	return refunded, nil
}
