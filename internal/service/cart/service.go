package cart

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"shopmate-api/internal/domain"
	cartrepo "shopmate-api/internal/repository/cart"

	"github.com/google/uuid"
)

type cartRepo interface {
	AddItem(ctx context.Context, in cartrepo.AddItemInput) (*domain.CartItem, error)
	ListLines(ctx context.Context, cartID string) ([]domain.CartLine, error)
	GetItem(ctx context.Context, itemID int) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID int) error
	Exists(ctx context.Context, cartID string) (bool, error)
	Empty(ctx context.Context, cartID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

// Service manages anonymous shopping carts. Carts have no owner and no
// expiry; a cart id simply names a bag of rows.
type Service struct {
	repo     cartRepo
	products productRepo
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// GenerateID mints a fresh cart identifier. No row is written until the
// first item lands in the cart.
func (s *Service) GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

type AddItemInput struct {
	CartID     string `json:"cart_id"`
	ProductID  int    `json:"product_id"`
	Attributes string `json:"attributes"`
	Quantity   int    `json:"quantity"`
}

// AddItem appends a product to the cart and returns the cart's full line
// view. Unknown products are rejected before any row is written.
func (s *Service) AddItem(ctx context.Context, in AddItemInput) ([]domain.CartLine, error) {
	if strings.TrimSpace(in.CartID) == "" {
		return nil, &domain.ValidationError{Field: "cart_id"}
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ReferenceNotFoundError{Field: "product_id", ID: strconv.Itoa(in.ProductID)}
		}
		return nil, err
	}
	if _, err := s.repo.AddItem(ctx, cartrepo.AddItemInput{
		CartID:     in.CartID,
		ProductID:  in.ProductID,
		Attributes: in.Attributes,
		Quantity:   in.Quantity,
	}); err != nil {
		return nil, err
	}
	return s.repo.ListLines(ctx, in.CartID)
}

// List returns the cart's lines with product data joined in. An unknown
// cart id is an empty cart, not an error.
func (s *Service) List(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	return s.repo.ListLines(ctx, cartID)
}

// UpdateItem changes an item's quantity and returns the updated cart.
func (s *Service) UpdateItem(ctx context.Context, itemID, quantity int) ([]domain.CartLine, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity"}
	}
	item, err := s.repo.UpdateItemQuantity(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	return s.repo.ListLines(ctx, item.CartID)
}

// RemoveItem deletes a single line from its cart.
func (s *Service) RemoveItem(ctx context.Context, itemID int) error {
	return s.repo.RemoveItem(ctx, itemID)
}

// Empty deletes every line in the cart. An unknown cart id is reported as
// not found rather than silently succeeding.
func (s *Service) Empty(ctx context.Context, cartID string) error {
	ok, err := s.repo.Exists(ctx, cartID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return s.repo.Empty(ctx, cartID)
}
