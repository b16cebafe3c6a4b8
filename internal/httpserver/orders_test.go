package httpserver

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"shopadmin/internal/domain"
)

func testOrderDeps() Deps {
	deps := testDeps()
	deps.OrderSvc = &stubOrderSvc{order: &domain.Order{
		ID:           "o-1",
		Code:         "DH001",
		CustomerName: "Nguyễn Văn A",
		Lines: []domain.OrderLine{
			{ProductID: "p-1", ProductName: "Chuột Logitech MX Master 3S", UnitPriceVND: 2_800_000, Quantity: 2},
		},
		SubtotalVND:    5_600_000,
		TaxVND:         448_000,
		TaxRatePercent: 8,
		TotalVND:       6_048_000,
		Status:         domain.OrderCompleted,
		CreatedAt:      time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}}
	return deps
}

func TestListOrdersHandler(t *testing.T) {
	router := newTestRouter(t, testOrderDeps())

	rec := doRequest(router, http.MethodGet, "/api/orders?search=DH001", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"code":"DH001"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListOrdersHandler_EmptyIsArray(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/api/orders", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty list should serialize as [], got %s", rec.Body.String())
	}
}

func TestRefundHandler(t *testing.T) {
	router := newTestRouter(t, testOrderDeps())

	rec := doRequest(router, http.MethodPost, "/api/orders/o-1/refund", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"refunded"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRefundHandler_AlreadyRefunded(t *testing.T) {
	deps := testDeps()
	deps.OrderSvc = &stubOrderSvc{err: domain.ErrAlreadyRefunded}
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/api/orders/o-1/refund", "", true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestReceiptHandler_PlainText(t *testing.T) {
	router := newTestRouter(t, testOrderDeps())

	rec := doRequest(router, http.MethodGet, "/api/orders/o-1/receipt", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q, want text/plain", ct)
	}
	for _, want := range []string{"HÓA ĐƠN THANH TOÁN", "DH001", "6.048.000đ"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/api/orders/nope", "", true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}
