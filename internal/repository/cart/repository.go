package cart

import (
	"context"

	"shopmate-api/internal/domain"
)

type AddItemInput struct {
	CartID     string
	ProductID  int
	Attributes string
	Quantity   int
}

// Repository persists shopping cart rows. Reads joined with product data go
// through ListLines; everything else works on raw cart rows.
type Repository interface {
	AddItem(ctx context.Context, in AddItemInput) (*domain.CartItem, error)
	ListLines(ctx context.Context, cartID string) ([]domain.CartLine, error)
	GetItem(ctx context.Context, itemID int) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID int) error
	Exists(ctx context.Context, cartID string) (bool, error)
	Empty(ctx context.Context, cartID string) error
}
