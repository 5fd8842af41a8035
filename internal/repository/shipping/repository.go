package shipping

import (
	"context"

	"shopmate-api/internal/domain"
)

type Repository interface {
	ListRegions(ctx context.Context) ([]domain.ShippingRegion, error)
	ListByRegion(ctx context.Context, regionID int) ([]domain.Shipping, error)
	GetByID(ctx context.Context, id int) (*domain.Shipping, error)
}
