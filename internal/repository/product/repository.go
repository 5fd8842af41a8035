package product

import (
	"context"

	"shopmate-api/internal/domain"
)

// Page bounds a paginated list query.
type Page struct {
	Limit  int
	Offset int
}

// Repository fetches catalog products and their reviews. List queries return
// the page of rows plus the unpaginated total, for pagination metadata.
type Repository interface {
	List(ctx context.Context, page Page) ([]domain.Product, int, error)
	Search(ctx context.Context, query string, page Page) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int, page Page) ([]domain.Product, int, error)
	ListByDepartment(ctx context.Context, departmentID int, page Page) ([]domain.Product, int, error)
	CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	ListReviews(ctx context.Context, productID int) ([]domain.Review, error)
}
