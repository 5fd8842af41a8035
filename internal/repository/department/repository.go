package department

import (
	"context"

	"shopmate-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int) (*domain.Department, error)
}
