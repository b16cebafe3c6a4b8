package pos

import (
	"context"
	"io"
	"log"
	"sync"

	"shopadmin/internal/domain"
	"shopadmin/internal/money"

	"github.com/google/uuid"
)

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByCode(ctx context.Context, code string) (*domain.Customer, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

// session is one terminal's working state. It lives in memory only; the
// durable record is the order produced at commit.
type session struct {
	id       string
	cart     cart
	customer *domain.Customer
	stage    Stage
	qr       *QRInfo
	receipt  *domain.Order
}

// Service owns the POS terminal sessions. All session access is
// serialized through one mutex; a terminal is a single operator and the
// commit itself is guarded again by the database transaction.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session

	products  productRepo
	customers customerRepo
	orders    orderRepo
	taxRate   int64
	logger    *log.Logger
}

func New(products productRepo, customers customerRepo, orders orderRepo, taxRate int64, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		sessions:  make(map[string]*session),
		products:  products,
		customers: customers,
		orders:    orders,
		taxRate:   taxRate,
		logger:    logger,
	}
}

// View is the full terminal state returned from every session
// operation, so the client never has to stitch partial responses.
type View struct {
	SessionID      string            `json:"sessionId"`
	Lines          []domain.CartLine `json:"items"`
	Subtotal       int64             `json:"subtotal"`
	Tax            int64             `json:"tax"`
	TaxRatePercent int64             `json:"taxRate"`
	Total          int64             `json:"total"`
	Customer       *domain.Customer  `json:"customer,omitempty"`
	Stage          Stage             `json:"stage"`
	QR             *QRInfo           `json:"qr,omitempty"`
	Receipt        *domain.Order     `json:"receipt,omitempty"`
}

func (s *Service) view(sess *session) *View {
	subtotal := sess.cart.subtotal()
	tax := money.Tax(subtotal, s.taxRate)
	lines := make([]domain.CartLine, len(sess.cart.lines))
	copy(lines, sess.cart.lines)
	return &View{
		SessionID:      sess.id,
		Lines:          lines,
		Subtotal:       subtotal,
		Tax:            tax,
		TaxRatePercent: s.taxRate,
		Total:          subtotal + tax,
		Customer:       sess.customer,
		Stage:          sess.stage,
		QR:             sess.qr,
		Receipt:        sess.receipt,
	}
}

// CreateSession opens a terminal session with the walk-in guest
// preselected.
func (s *Service) CreateSession(ctx context.Context) (*View, error) {
	guest, err := s.customers.GetByCode(ctx, domain.GuestCode)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{id: uuid.NewString(), customer: guest}
	s.sessions[sess.id] = sess
	s.logger.Printf("pos: session opened id=%s", sess.id)
	return s.view(sess), nil
}

func (s *Service) GetView(ctx context.Context, sessionID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sessions, sessionID)
	s.logger.Printf("pos: session closed id=%s", sessionID)
	return nil
}

// SelectCustomer attaches a customer to the sale. Allowed any time
// before checkout opens.
func (s *Service) SelectCustomer(ctx context.Context, sessionID, customerID string) (*View, error) {
	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageIdle {
		return nil, domain.ErrCheckoutState
	}
	sess.customer = c
	return s.view(sess), nil
}

// AddItem puts one unit of the product into the cart, fetching the live
// product so the snapshot and the stock checks are current.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string) (*View, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageIdle {
		return nil, domain.ErrCheckoutState
	}
	if err := sess.cart.add(p); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// UpdateQuantity moves a line by delta, clamped at one and capped at
// the stock snapshot taken when the line was added.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageIdle {
		return nil, domain.ErrCheckoutState
	}
	if err := sess.cart.adjust(productID, delta); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageIdle {
		return nil, domain.ErrCheckoutState
	}
	if err := sess.cart.remove(productID); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ClearCart empties the cart and puts the walk-in guest back in the
// customer slot.
func (s *Service) ClearCart(ctx context.Context, sessionID string) (*View, error) {
	guest, err := s.customers.GetByCode(ctx, domain.GuestCode)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageIdle {
		return nil, domain.ErrCheckoutState
	}
	sess.cart.clear()
	sess.customer = guest
	return s.view(sess), nil
}

func (s *Service) get(sessionID string) (*session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sess, nil
}
