package attribute

import (
	"context"

	"shopmate-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Attribute, error)
	GetByID(ctx context.Context, id int) (*domain.Attribute, error)
	ListValues(ctx context.Context, attributeID int) ([]domain.AttributeValue, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.ProductAttribute, error)
}
