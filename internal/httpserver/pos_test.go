package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"shopadmin/internal/domain"
	"shopadmin/internal/service/pos"
)

func TestCreateSessionHandler(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodPost, "/api/pos/sessions", "", true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"sessionId":"s-1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAddItemHandler_RequiresProductID(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodPost, "/api/pos/sessions/s-1/items", `{}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddItemHandler_OutOfStockConflict(t *testing.T) {
	deps := testDeps()
	deps.POSSvc = &stubPOSSvc{err: domain.ErrOutOfStock}
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/api/pos/sessions/s-1/items", `{"productId":"p-1"}`, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestStartCheckoutHandler_EmptyCart(t *testing.T) {
	deps := testDeps()
	deps.POSSvc = &stubPOSSvc{err: domain.ErrEmptyCart}
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/api/pos/sessions/s-1/checkout", "", true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestConfirmHandler_WrongStage(t *testing.T) {
	deps := testDeps()
	deps.POSSvc = &stubPOSSvc{err: domain.ErrCheckoutState}
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/api/pos/sessions/s-1/checkout/confirm", "", true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCashHandler_ReturnsReceipt(t *testing.T) {
	deps := testDeps()
	deps.POSSvc = &stubPOSSvc{view: &pos.View{
		SessionID: "s-1",
		Stage:     pos.StageReceipt,
		Receipt:   &domain.Order{ID: "o-1", Code: "DH001", TotalVND: 6_048_000},
	}}
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/api/pos/sessions/s-1/checkout/cash", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"code":"DH001"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateQuantityHandler_RequiresDelta(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodPatch, "/api/pos/sessions/s-1/items/p-1", `{}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
