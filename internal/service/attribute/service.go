package attribute

import (
	"context"

	"shopmate-api/internal/domain"
)

type repo interface {
	List(ctx context.Context) ([]domain.Attribute, error)
	GetByID(ctx context.Context, id int) (*domain.Attribute, error)
	ListValues(ctx context.Context, attributeID int) ([]domain.AttributeValue, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.ProductAttribute, error)
}

type Service struct {
	repo repo
}

func New(r repo) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]domain.Attribute, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Attribute, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListValues(ctx context.Context, attributeID int) ([]domain.AttributeValue, error) {
	return s.repo.ListValues(ctx, attributeID)
}

func (s *Service) ListByProduct(ctx context.Context, productID int) ([]domain.ProductAttribute, error) {
	return s.repo.ListByProduct(ctx, productID)
}
