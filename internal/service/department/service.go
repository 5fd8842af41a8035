package department

import (
	"context"

	"shopmate-api/internal/domain"
)

type repo interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int) (*domain.Department, error)
}

type Service struct {
	repo repo
}

func New(r repo) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Department, error) {
	return s.repo.GetByID(ctx, id)
}
