package inventory

import (
	"context"
	"errors"
	"testing"

	"shopadmin/internal/domain"
)

type stubSlips struct {
	created []domain.ImportSlip
	deleted []string
}

func (s *stubSlips) Create(ctx context.Context, slip domain.ImportSlip) (*domain.ImportSlip, error) {
	slip.Code = "I001"
	s.created = append(s.created, slip)
	return &slip, nil
}

func (s *stubSlips) GetByID(ctx context.Context, id string) (*domain.ImportSlip, error) {
	return nil, domain.ErrNotFound
}

func (s *stubSlips) List(ctx context.Context, search string) ([]domain.ImportSlip, error) {
	return nil, nil
}

func (s *stubSlips) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubProducts struct {
	byID map[string]domain.Product
}

func (s *stubProducts) List(ctx context.Context, search, category string) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubProducts) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubProducts) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubProducts) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProducts) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProducts) Delete(ctx context.Context, id string) error { return nil }

func (s *stubProducts) SetActive(ctx context.Context, id string, active bool) error { return nil }

func (s *stubProducts) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProducts) InventorySummary(ctx context.Context, lowStockThreshold int) (*domain.InventorySummary, error) {
	return &domain.InventorySummary{}, nil
}

func newTestService() (*Service, *stubSlips) {
	slips := &stubSlips{}
	products := &stubProducts{byID: map[string]domain.Product{
		"p-kb":    {ID: "p-kb", Name: "Keychron Q1 Pro", Stock: 8},
		"p-mouse": {ID: "p-mouse", Name: "Chuột Logitech MX Master 3S", Stock: 30},
	}}
	return New(slips, products, nil), slips
}

func TestCreateSlipRequiresSupplier(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreateSlip(context.Background(), SlipInput{
		Lines: []LineInput{{ProductID: "p-kb", ImportPriceVND: 3_000_000, Quantity: 5}},
	})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCreateSlipRequiresLines(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreateSlip(context.Background(), SlipInput{Supplier: "Công ty ABC"})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCreateSlipRejectsZeroQuantity(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreateSlip(context.Background(), SlipInput{
		Supplier: "Công ty ABC",
		Lines:    []LineInput{{ProductID: "p-kb", ImportPriceVND: 3_000_000, Quantity: 0}},
	})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCreateSlipMergesDuplicateLines(t *testing.T) {
	svc, slips := newTestService()

	created, err := svc.CreateSlip(context.Background(), SlipInput{
		Supplier: "Công ty ABC",
		Lines: []LineInput{
			{ProductID: "p-kb", ImportPriceVND: 3_000_000, Quantity: 2},
			{ProductID: "p-kb", ImportPriceVND: 3_000_000, Quantity: 3},
			{ProductID: "p-kb", ImportPriceVND: 2_900_000, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateSlip: %v", err)
	}
	if len(slips.created) != 1 {
		t.Fatalf("expected 1 slip persisted, got %d", len(slips.created))
	}
	if len(created.Lines) != 2 {
		t.Fatalf("expected lines merged to 2, got %d", len(created.Lines))
	}
	if created.Lines[0].Quantity != 5 {
		t.Fatalf("merged quantity = %d, want 5", created.Lines[0].Quantity)
	}
	wantValue := int64(3_000_000*5 + 2_900_000*1)
	if created.TotalValue != wantValue {
		t.Fatalf("total value = %d, want %d", created.TotalValue, wantValue)
	}
	if created.Lines[0].ProductName != "Keychron Q1 Pro" {
		t.Fatalf("product name not resolved: %q", created.Lines[0].ProductName)
	}
}

func TestCreateSlipUnknownProduct(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreateSlip(context.Background(), SlipInput{
		Supplier: "Công ty ABC",
		Lines:    []LineInput{{ProductID: "nope", ImportPriceVND: 1, Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSlip(t *testing.T) {
	svc, slips := newTestService()
	if err := svc.DeleteSlip(context.Background(), "slip-1"); err != nil {
		t.Fatalf("DeleteSlip: %v", err)
	}
	if len(slips.deleted) != 1 || slips.deleted[0] != "slip-1" {
		t.Fatalf("delete not forwarded: %+v", slips.deleted)
	}
}
