package tax

import (
	"context"

	"shopmate-api/internal/domain"
)

type repo interface {
	List(ctx context.Context) ([]domain.Tax, error)
	GetByID(ctx context.Context, id int) (*domain.Tax, error)
}

type Service struct {
	repo repo
}

func New(r repo) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]domain.Tax, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Tax, error) {
	return s.repo.GetByID(ctx, id)
}
