package pos

import (
	"context"
	"fmt"
	"time"

	"shopadmin/internal/domain"
	"shopadmin/internal/money"

	"github.com/google/uuid"
)

// Stage is the checkout dialog position. The empty value means no
// checkout is open and the cart accepts edits.
type Stage string

const (
	StageIdle    Stage = ""
	StageMethod  Stage = "method"
	StageQR      Stage = "qr"
	StageReceipt Stage = "receipt"
)

// QRInfo is the payment reference shown while waiting for a bank
// transfer. The reference is assigned when checkout opens and survives
// going back to the method picker.
type QRInfo struct {
	Reference string `json:"reference"`
	AmountVND int64  `json:"amount"`
	Payload   string `json:"payload"`
}

// StartCheckout opens the payment dialog. The cart freezes until the
// checkout is committed or dismissed.
func (s *Service) StartCheckout(ctx context.Context, sessionID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageIdle {
		return nil, domain.ErrCheckoutState
	}
	if sess.cart.empty() {
		return nil, domain.ErrEmptyCart
	}
	if sess.customer == nil {
		return nil, domain.ErrNoCustomer
	}

	subtotal := sess.cart.subtotal()
	total := subtotal + money.Tax(subtotal, s.taxRate)
	ref := fmt.Sprintf("INV-%06d", time.Now().UnixMilli()%1_000_000)
	sess.qr = &QRInfo{
		Reference: ref,
		AmountVND: total,
		Payload:   fmt.Sprintf("PAYMENT:%s|AMOUNT:%d", ref, total),
	}
	sess.stage = StageMethod
	sess.receipt = nil
	return s.view(sess), nil
}

// ChooseCash commits the sale immediately.
func (s *Service) ChooseCash(ctx context.Context, sessionID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageMethod {
		return nil, domain.ErrCheckoutState
	}
	return s.commit(ctx, sess)
}

// ChooseQR moves to the transfer screen; nothing is committed until the
// operator confirms payment arrived.
func (s *Service) ChooseQR(ctx context.Context, sessionID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageMethod {
		return nil, domain.ErrCheckoutState
	}
	sess.stage = StageQR
	return s.view(sess), nil
}

// Back returns from the transfer screen to the method picker, keeping
// the payment reference.
func (s *Service) Back(ctx context.Context, sessionID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageQR {
		return nil, domain.ErrCheckoutState
	}
	sess.stage = StageMethod
	return s.view(sess), nil
}

// ConfirmQR records that the transfer arrived and commits the sale.
func (s *Service) ConfirmQR(ctx context.Context, sessionID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageQR {
		return nil, domain.ErrCheckoutState
	}
	return s.commit(ctx, sess)
}

// CloseCheckout dismisses the dialog. Before commit it is a
// cancellation and the cart survives untouched; on the receipt screen
// it just closes the receipt, the sale is already durable.
func (s *Service) CloseCheckout(ctx context.Context, sessionID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	switch sess.stage {
	case StageMethod, StageQR:
		sess.stage = StageIdle
		sess.qr = nil
	case StageReceipt:
		sess.stage = StageIdle
		sess.qr = nil
		sess.receipt = nil
	default:
		return nil, domain.ErrCheckoutState
	}
	return s.view(sess), nil
}

// commit is the single point where a sale becomes durable: the order
// insert and the stock decrements happen in one database transaction,
// and only on success does the terminal reset.
func (s *Service) commit(ctx context.Context, sess *session) (*View, error) {
	subtotal := sess.cart.subtotal()
	tax := money.Tax(subtotal, s.taxRate)

	order := domain.Order{
		ID:             uuid.NewString(),
		CustomerID:     sess.customer.ID,
		CustomerName:   sess.customer.Name,
		CustomerPhone:  sess.customer.Phone,
		Lines:          sess.cart.orderLines(),
		SubtotalVND:    subtotal,
		TaxVND:         tax,
		TaxRatePercent: s.taxRate,
		TotalVND:       subtotal + tax,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Printf("pos: commit failed session=%s error=%v", sess.id, err)
		return nil, err
	}

	guest, err := s.customers.GetByCode(ctx, domain.GuestCode)
	if err != nil {
		// Sale is durable; only the terminal reset is degraded.
		s.logger.Printf("pos: guest reload failed after commit: %v", err)
	} else {
		sess.customer = guest
	}
	sess.cart.clear()
	sess.qr = nil
	sess.stage = StageReceipt
	sess.receipt = created
	s.logger.Printf("pos: committed session=%s order=%s total=%d", sess.id, created.Code, created.TotalVND)
	return s.view(sess), nil
}
