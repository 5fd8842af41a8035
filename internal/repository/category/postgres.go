package category

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT category_id, department_id, name, description
FROM category
ORDER BY category_id
`
	return r.queryCategories(ctx, q)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	const q = `
SELECT category_id, department_id, name, description
FROM category
WHERE category_id = $1
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.DepartmentID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) ListByDepartment(ctx context.Context, departmentID int) ([]domain.Category, error) {
	const q = `
SELECT category_id, department_id, name, description
FROM category
WHERE department_id = $1
ORDER BY category_id
`
	return r.queryCategories(ctx, q, departmentID)
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int) ([]domain.Category, error) {
	const q = `
SELECT c.category_id, c.department_id, c.name, c.description
FROM category c
JOIN product_category pc ON pc.category_id = c.category_id
WHERE pc.product_id = $1
ORDER BY c.category_id
`
	return r.queryCategories(ctx, q, productID)
}

func (r *postgresRepo) queryCategories(ctx context.Context, q string, args ...interface{}) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.DepartmentID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
