package shipping

import (
	"context"

	"shopmate-api/internal/domain"
)

type repo interface {
	ListRegions(ctx context.Context) ([]domain.ShippingRegion, error)
	ListByRegion(ctx context.Context, regionID int) ([]domain.Shipping, error)
}

type Service struct {
	repo repo
}

func New(r repo) *Service {
	return &Service{repo: r}
}

func (s *Service) ListRegions(ctx context.Context) ([]domain.ShippingRegion, error) {
	return s.repo.ListRegions(ctx)
}

func (s *Service) ListByRegion(ctx context.Context, regionID int) ([]domain.Shipping, error) {
	return s.repo.ListByRegion(ctx, regionID)
}
