package shipping

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

func (r *postgresRepo) ListRegions(ctx context.Context) ([]domain.ShippingRegion, error) {
	const q = `SELECT shipping_region_id, shipping_region FROM shipping_region ORDER BY shipping_region_id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := []domain.ShippingRegion{}
	for rows.Next() {
		var sr domain.ShippingRegion
		if err := rows.Scan(&sr.ID, &sr.Region); err != nil {
			return nil, err
		}
		regions = append(regions, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *postgresRepo) ListByRegion(ctx context.Context, regionID int) ([]domain.Shipping, error) {
	const q = `
SELECT shipping_id, shipping_type, shipping_cost::text, shipping_region_id
FROM shipping
WHERE shipping_region_id = $1
ORDER BY shipping_id
`
	rows, err := r.pool.Query(ctx, q, regionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []domain.Shipping{}
	for rows.Next() {
		var s domain.Shipping
		if err := rows.Scan(&s.ID, &s.Type, &s.Cost, &s.RegionID); err != nil {
			return nil, err
		}
		options = append(options, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Shipping, error) {
	const q = `
SELECT shipping_id, shipping_type, shipping_cost::text, shipping_region_id
FROM shipping
WHERE shipping_id = $1
`
	var s domain.Shipping
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Type, &s.Cost, &s.RegionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
