package customers

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"shopadmin/internal/domain"
	"shopadmin/internal/repository/customer"
)

type Service struct {
	customers customer.Repository
	logger    *log.Logger
}

func New(customers customer.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{customers: customers, logger: logger}
}

func (s *Service) List(ctx context.Context, search string) ([]domain.Customer, error) {
	return s.customers.List(ctx, strings.TrimSpace(search))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalid)
	}
	if strings.EqualFold(strings.TrimSpace(c.Code), domain.GuestCode) {
		return nil, fmt.Errorf("%w: code %s is reserved", domain.ErrInvalid, domain.GuestCode)
	}
	created, err := s.customers.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("customers: created code=%s", created.Code)
	return created, nil
}
