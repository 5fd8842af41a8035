package category

import (
	"context"

	"shopmate-api/internal/domain"
)

type repo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]domain.Category, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.Category, error)
}

type Service struct {
	repo repo
}

func New(r repo) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByDepartment(ctx context.Context, departmentID int) ([]domain.Category, error) {
	return s.repo.ListByDepartment(ctx, departmentID)
}

func (s *Service) ListByProduct(ctx context.Context, productID int) ([]domain.Category, error) {
	return s.repo.ListByProduct(ctx, productID)
}
