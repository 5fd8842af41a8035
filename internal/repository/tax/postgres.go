package tax

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Tax, error) {
	const q = `SELECT tax_id, tax_type, tax_percentage::text FROM tax ORDER BY tax_id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taxes := []domain.Tax{}
	for rows.Next() {
		var t domain.Tax
		if err := rows.Scan(&t.ID, &t.Type, &t.Percentage); err != nil {
			return nil, err
		}
		taxes = append(taxes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return taxes, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Tax, error) {
	const q = `SELECT tax_id, tax_type, tax_percentage::text FROM tax WHERE tax_id = $1`
	var t domain.Tax
	err := r.pool.QueryRow(ctx, q, id).Scan(&t.ID, &t.Type, &t.Percentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
