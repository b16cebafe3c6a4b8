package catalog

import (
	"context"
	"errors"
	"testing"

	"shopadmin/internal/domain"
)

type stubRepo struct {
	products map[string]domain.Product
	created  []domain.Product
}

func newStubRepo() *stubRepo {
	return &stubRepo{products: make(map[string]domain.Product)}
}

func (s *stubRepo) List(ctx context.Context, search, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.Code == code {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = "generated"
	if p.Code == "" {
		p.Code = "P101"
	}
	s.created = append(s.created, p)
	s.products[p.ID] = p
	return &p, nil
}

func (s *stubRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if _, ok := s.products[p.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	s.products[p.ID] = p
	return &p, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *stubRepo) SetActive(ctx context.Context, id string, active bool) error {
	p, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = active
	s.products[id] = p
	return nil
}

func (s *stubRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	s.products[p.Code] = p
	return &p, nil
}

func (s *stubRepo) InventorySummary(ctx context.Context, lowStockThreshold int) (*domain.InventorySummary, error) {
	return &domain.InventorySummary{}, nil
}

func TestCreateRequiresName(t *testing.T) {
	svc := New(newStubRepo(), nil)
	_, err := svc.Create(context.Background(), domain.Product{PriceVND: 1000})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc := New(newStubRepo(), nil)
	_, err := svc.Create(context.Background(), domain.Product{Name: "X", PriceVND: -1})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCreateDefaults(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo, nil)

	created, err := svc.Create(context.Background(), domain.Product{Name: "Chuột Logitech MX Master 3S", PriceVND: 2_800_000, Stock: 30})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Active {
		t.Fatal("new products should be active")
	}
	if created.Rating != 5.0 {
		t.Fatalf("rating = %v, want default 5.0", created.Rating)
	}
	if created.Code == "" {
		t.Fatal("expected generated code")
	}
}

func TestUpdateRequiresID(t *testing.T) {
	svc := New(newStubRepo(), nil)
	_, err := svc.Update(context.Background(), domain.Product{Name: "X", PriceVND: 1})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestDeleteUnknown(t *testing.T) {
	svc := New(newStubRepo(), nil)
	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
