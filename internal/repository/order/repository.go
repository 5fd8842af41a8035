package order

import (
	"context"

	"shopmate-api/internal/domain"
)

// CreateInput binds a new order to its validated references. The cart's
// contents are read inside the creation transaction, not passed in.
type CreateInput struct {
	CartID     string
	ShippingID int
	TaxID      int
	CustomerID int
}

// Repository persists orders and their immutable detail snapshots.
type Repository interface {
	// CreateFromCart snapshots the cart's current lines into a new order
	// inside a single transaction: order row, detail rows, total update.
	// An empty or unknown cart yields ReferenceNotFoundError and persists
	// nothing.
	CreateFromCart(ctx context.Context, in CreateInput) (int, error)
	GetByID(ctx context.Context, orderID int) (*domain.Order, error)
	ListDetails(ctx context.Context, orderID int) ([]domain.OrderDetail, error)
	GetSummary(ctx context.Context, orderID int) (*domain.OrderSummary, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.OrderSummary, error)
	// MarkPaid flips the order's status flag to paid and records the
	// gateway's charge reference. It only touches rows still unpaid, so a
	// second call reports ErrOrderAlreadyPaid.
	MarkPaid(ctx context.Context, orderID int, authCode, reference string) error
}
