package attribute

import (
	"context"
	"errors"

	"shopmate-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Attribute, error) {
	const q = `SELECT attribute_id, name FROM attribute ORDER BY attribute_id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attributes := []domain.Attribute{}
	for rows.Next() {
		var a domain.Attribute
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		attributes = append(attributes, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Attribute, error) {
	const q = `SELECT attribute_id, name FROM attribute WHERE attribute_id = $1`
	var a domain.Attribute
	err := r.pool.QueryRow(ctx, q, id).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) ListValues(ctx context.Context, attributeID int) ([]domain.AttributeValue, error) {
	const q = `
SELECT attribute_value_id, value
FROM attribute_value
WHERE attribute_id = $1
ORDER BY attribute_value_id
`
	rows, err := r.pool.Query(ctx, q, attributeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []domain.AttributeValue{}
	for rows.Next() {
		var v domain.AttributeValue
		if err := rows.Scan(&v.ID, &v.Value); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int) ([]domain.ProductAttribute, error) {
	const q = `
SELECT a.name, av.attribute_value_id, av.value
FROM product_attribute pa
JOIN attribute_value av ON av.attribute_value_id = pa.attribute_value_id
JOIN attribute a ON a.attribute_id = av.attribute_id
WHERE pa.product_id = $1
ORDER BY av.attribute_value_id
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attrs := []domain.ProductAttribute{}
	for rows.Next() {
		var pa domain.ProductAttribute
		if err := rows.Scan(&pa.AttributeName, &pa.AttributeValueID, &pa.AttributeValue); err != nil {
			return nil, err
		}
		attrs = append(attrs, pa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attrs, nil
}
