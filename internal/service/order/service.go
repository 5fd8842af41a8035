package order

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"shopmate-api/internal/domain"
	orderrepo "shopmate-api/internal/repository/order"
)

type orderRepo interface {
	CreateFromCart(ctx context.Context, in orderrepo.CreateInput) (int, error)
	GetByID(ctx context.Context, orderID int) (*domain.Order, error)
	ListDetails(ctx context.Context, orderID int) ([]domain.OrderDetail, error)
	GetSummary(ctx context.Context, orderID int) (*domain.OrderSummary, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.OrderSummary, error)
}

type shippingRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Shipping, error)
}

type taxRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Tax, error)
}

type cartRepo interface {
	Empty(ctx context.Context, cartID string) error
}

// Service turns carts into orders and serves order lookups.
type Service struct {
	orders   orderRepo
	shipping shippingRepo
	taxes    taxRepo
	carts    cartRepo
	logger   *log.Logger
}

func New(orders orderRepo, shipping shippingRepo, taxes taxRepo, carts cartRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, shipping: shipping, taxes: taxes, carts: carts, logger: logger}
}

type CreateInput struct {
	CartID     string `json:"cart_id"`
	ShippingID int    `json:"shipping_id"`
	TaxID      int    `json:"tax_id"`
}

// Create validates the order's references, snapshots the cart into a new
// order, then clears the cart. The order total is the sum of line subtotals;
// shipping and tax selections are recorded but not folded into the total.
func (s *Service) Create(ctx context.Context, customerID int, in CreateInput) (int, error) {
	if strings.TrimSpace(in.CartID) == "" {
		return 0, &domain.ValidationError{Field: "cart_id"}
	}
	if _, err := s.shipping.GetByID(ctx, in.ShippingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, &domain.ReferenceNotFoundError{Field: "shipping_id", ID: strconv.Itoa(in.ShippingID)}
		}
		return 0, err
	}
	if _, err := s.taxes.GetByID(ctx, in.TaxID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, &domain.ReferenceNotFoundError{Field: "tax_id", ID: strconv.Itoa(in.TaxID)}
		}
		return 0, err
	}

	orderID, err := s.orders.CreateFromCart(ctx, orderrepo.CreateInput{
		CartID:     in.CartID,
		ShippingID: in.ShippingID,
		TaxID:      in.TaxID,
		CustomerID: customerID,
	})
	if err != nil {
		return 0, err
	}

	// The order snapshot is already committed; a failed cart cleanup leaves
	// stale rows but never a broken order.
	if err := s.carts.Empty(ctx, in.CartID); err != nil {
		s.logger.Printf("order service: emptying cart %s after order %d failed: %v", in.CartID, orderID, err)
	}
	return orderID, nil
}

// Get returns the detail lines of one of the customer's orders.
func (s *Service) Get(ctx context.Context, customerID, orderID int) ([]domain.OrderDetail, error) {
	if err := s.authorize(ctx, customerID, orderID); err != nil {
		return nil, err
	}
	return s.orders.ListDetails(ctx, orderID)
}

// GetSummary returns the short form of one of the customer's orders.
func (s *Service) GetSummary(ctx context.Context, customerID, orderID int) (*domain.OrderSummary, error) {
	if err := s.authorize(ctx, customerID, orderID); err != nil {
		return nil, err
	}
	return s.orders.GetSummary(ctx, orderID)
}

// ListByCustomer returns summaries of all the customer's orders, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID int) ([]domain.OrderSummary, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

// authorize hides other customers' orders behind not-found.
func (s *Service) authorize(ctx context.Context, customerID, orderID int) error {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.CustomerID != customerID {
		return domain.ErrNotFound
	}
	return nil
}
