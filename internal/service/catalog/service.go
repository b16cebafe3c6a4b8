package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"shopadmin/internal/domain"
	"shopadmin/internal/repository/product"
)

// Service carries catalog reads and writes for the admin console.
type Service struct {
	products product.Repository
	logger   *log.Logger
}

func New(products product.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{products: products, logger: logger}
}

func (s *Service) List(ctx context.Context, search, category string) ([]domain.Product, error) {
	return s.products.List(ctx, strings.TrimSpace(search), strings.TrimSpace(category))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if p.Rating == 0 {
		p.Rating = 5.0
	}
	p.Active = true
	created, err := s.products.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("catalog: created product code=%s", created.Code)
	return created, nil
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("%w: product id required", domain.ErrInvalid)
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Printf("catalog: deleted product id=%s", id)
	return nil
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	return s.products.SetActive(ctx, id, active)
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalid)
	}
	if p.PriceVND < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalid)
	}
	if p.CostVND < 0 {
		return fmt.Errorf("%w: import price must not be negative", domain.ErrInvalid)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrInvalid)
	}
	return nil
}
