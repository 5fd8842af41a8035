package tax

import (
	"context"

	"shopmate-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Tax, error)
	GetByID(ctx context.Context, id int) (*domain.Tax, error)
}
