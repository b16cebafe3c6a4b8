package pos

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopadmin/internal/domain"
)

type stubProducts struct {
	byID map[string]domain.Product
}

func (s *stubProducts) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := p
	return &copied, nil
}

type stubCustomers struct {
	byID   map[string]domain.Customer
	byCode map[string]domain.Customer
}

func (s *stubCustomers) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := c
	return &copied, nil
}

func (s *stubCustomers) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	c, ok := s.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := c
	return &copied, nil
}

type stubOrders struct {
	created []domain.Order
	err     error
}

func (s *stubOrders) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, o)
	out := o
	out.Code = "DH001"
	out.Status = domain.OrderCompleted
	out.CreatedAt = time.Now()
	return &out, nil
}

func newTestService(t *testing.T) (*Service, *stubProducts, *stubOrders) {
	t.Helper()
	products := &stubProducts{byID: map[string]domain.Product{
		"p-mouse":   {ID: "p-mouse", Code: "P004", Name: "Chuột Logitech MX Master 3S", PriceVND: 2_800_000, Stock: 30},
		"p-monitor": {ID: "p-monitor", Code: "P006", Name: "Màn hình LG UltraView 29\"", PriceVND: 5_500_000, Stock: 0},
		"p-kb":      {ID: "p-kb", Code: "P005", Name: "Keychron Q1 Pro", PriceVND: 4_200_000, Stock: 2},
	}}
	guest := domain.Customer{ID: "c-guest", Code: domain.GuestCode, Name: "Khách lẻ (Walk-in)", Phone: "---"}
	named := domain.Customer{ID: "c-001", Code: "KH001", Name: "Nguyễn Văn A", Phone: "0909123456"}
	customers := &stubCustomers{
		byID:   map[string]domain.Customer{guest.ID: guest, named.ID: named},
		byCode: map[string]domain.Customer{guest.Code: guest, named.Code: named},
	}
	orders := &stubOrders{}
	return New(products, customers, orders, 8, nil), products, orders
}

func mustSession(t *testing.T, svc *Service) string {
	t.Helper()
	v, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	return v.SessionID
}

func TestCreateSessionSelectsGuest(t *testing.T) {
	svc, _, _ := newTestService(t)
	v, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if v.Customer == nil || v.Customer.Code != domain.GuestCode {
		t.Fatalf("expected guest preselected, got %+v", v.Customer)
	}
	if v.Stage != StageIdle {
		t.Fatalf("expected idle stage, got %q", v.Stage)
	}
}

func TestAddItemOutOfStock(t *testing.T) {
	svc, _, _ := newTestService(t)
	sid := mustSession(t, svc)

	_, err := svc.AddItem(context.Background(), sid, "p-monitor")
	if !errors.Is(err, domain.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}

	v, err := svc.GetView(context.Background(), sid)
	if err != nil {
		t.Fatalf("GetView: %v", err)
	}
	if len(v.Lines) != 0 {
		t.Fatalf("cart should stay empty, got %d lines", len(v.Lines))
	}
}

func TestAddItemMergeCappedAtStock(t *testing.T) {
	svc, _, _ := newTestService(t)
	sid := mustSession(t, svc)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.AddItem(ctx, sid, "p-kb"); err != nil {
			t.Fatalf("AddItem %d: %v", i, err)
		}
	}
	_, err := svc.AddItem(ctx, sid, "p-kb")
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	v, _ := svc.GetView(ctx, sid)
	if got := v.Lines[0].Quantity; got != 2 {
		t.Fatalf("quantity should stay at 2, got %d", got)
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	svc, _, _ := newTestService(t)
	sid := mustSession(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, sid, "p-mouse"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	v, err := svc.UpdateQuantity(ctx, sid, "p-mouse", -5)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if v.Lines[0].Quantity != 1 {
		t.Fatalf("quantity should clamp to 1, got %d", v.Lines[0].Quantity)
	}
}

func TestUpdateQuantityRejectsAboveSnapshot(t *testing.T) {
	svc, _, _ := newTestService(t)
	sid := mustSession(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, sid, "p-kb"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	_, err := svc.UpdateQuantity(ctx, sid, "p-kb", 2)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestClearCartResetsCustomer(t *testing.T) {
	svc, _, _ := newTestService(t)
	sid := mustSession(t, svc)
	ctx := context.Background()

	if _, err := svc.SelectCustomer(ctx, sid, "c-001"); err != nil {
		t.Fatalf("SelectCustomer: %v", err)
	}
	if _, err := svc.AddItem(ctx, sid, "p-mouse"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	v, err := svc.ClearCart(ctx, sid)
	if err != nil {
		t.Fatalf("ClearCart: %v", err)
	}
	if len(v.Lines) != 0 {
		t.Fatalf("cart should be empty, got %d lines", len(v.Lines))
	}
	if v.Customer == nil || v.Customer.Code != domain.GuestCode {
		t.Fatalf("customer should reset to guest, got %+v", v.Customer)
	}
}

func TestRemoveItemUnknownLine(t *testing.T) {
	svc, _, _ := newTestService(t)
	sid := mustSession(t, svc)

	_, err := svc.RemoveItem(context.Background(), sid, "p-mouse")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestViewTotals(t *testing.T) {
	svc, _, _ := newTestService(t)
	sid := mustSession(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, sid, "p-mouse"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	v, err := svc.UpdateQuantity(ctx, sid, "p-mouse", 1)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if v.Subtotal != 5_600_000 {
		t.Fatalf("subtotal = %d, want 5600000", v.Subtotal)
	}
	if v.Tax != 448_000 {
		t.Fatalf("tax = %d, want 448000", v.Tax)
	}
	if v.Total != 6_048_000 {
		t.Fatalf("total = %d, want 6048000", v.Total)
	}
}

func TestUnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.GetView(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
