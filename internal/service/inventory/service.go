package inventory

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"shopadmin/internal/domain"
	"shopadmin/internal/repository/importslip"
	"shopadmin/internal/repository/product"

	"github.com/google/uuid"
)

// Service handles goods receiving. Each accepted slip credits product
// stock through the slip repository's transaction.
type Service struct {
	slips    importslip.Repository
	products product.Repository
	logger   *log.Logger
}

func New(slips importslip.Repository, products product.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{slips: slips, products: products, logger: logger}
}

// SlipInput is the raw receiving form: supplier, optional date, and the
// line items as entered.
type SlipInput struct {
	Supplier string      `json:"supplier"`
	Date     string      `json:"date"`
	Lines    []LineInput `json:"items"`
}

type LineInput struct {
	ProductID      string `json:"productId"`
	ImportPriceVND int64  `json:"importPrice"`
	Quantity       int    `json:"quantity"`
}

// CreateSlip validates the form, merges duplicate lines (same product
// and price), resolves product names, and applies the slip.
func (s *Service) CreateSlip(ctx context.Context, in SlipInput) (*domain.ImportSlip, error) {
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" {
		return nil, fmt.Errorf("%w: supplier required", domain.ErrInvalid)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: at least one item required", domain.ErrInvalid)
	}

	merged := make([]LineInput, 0, len(in.Lines))
	for _, line := range in.Lines {
		if line.ProductID == "" {
			return nil, fmt.Errorf("%w: item product required", domain.ErrInvalid)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", domain.ErrInvalid)
		}
		if line.ImportPriceVND < 0 {
			return nil, fmt.Errorf("%w: item import price must not be negative", domain.ErrInvalid)
		}
		found := false
		for i := range merged {
			if merged[i].ProductID == line.ProductID && merged[i].ImportPriceVND == line.ImportPriceVND {
				merged[i].Quantity += line.Quantity
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, line)
		}
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	slip := domain.ImportSlip{
		ID:       uuid.NewString(),
		Supplier: supplier,
		Date:     date,
	}
	for _, line := range merged {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		slip.Lines = append(slip.Lines, domain.ImportSlipLine{
			ProductID:      p.ID,
			ProductName:    p.Name,
			ImportPriceVND: line.ImportPriceVND,
			Quantity:       line.Quantity,
		})
		slip.TotalValue += line.ImportPriceVND * int64(line.Quantity)
	}

	created, err := s.slips.Create(ctx, slip)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("inventory: slip created code=%s supplier=%q value=%d", created.Code, created.Supplier, created.TotalValue)
	return created, nil
}

func (s *Service) List(ctx context.Context, search string) ([]domain.ImportSlip, error) {
	return s.slips.List(ctx, strings.TrimSpace(search))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.ImportSlip, error) {
	return s.slips.GetByID(ctx, id)
}

// DeleteSlip removes the record. Stock credited when the slip was
// applied stays credited.
func (s *Service) DeleteSlip(ctx context.Context, id string) error {
	if err := s.slips.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Printf("inventory: slip deleted id=%s", id)
	return nil
}
