package category

import (
	"context"

	"shopmate-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]domain.Category, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.Category, error)
}
