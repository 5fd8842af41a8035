package product

import (
	"context"
	"errors"
	"io"
	"log"

	"shopmate-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `
p.product_id, p.name, p.description, p.price::text, p.discounted_price::text,
p.image, p.image_2, p.thumbnail, p.display`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, page Page) ([]domain.Product, int, error) {
	const q = `SELECT ` + productColumns + `
FROM product p
ORDER BY p.product_id
LIMIT $1 OFFSET $2`
	const countQ = `SELECT count(*) FROM product`

	return r.listProducts(ctx, q, countQ, nil, page)
}

func (r *postgresRepo) Search(ctx context.Context, query string, page Page) ([]domain.Product, int, error) {
	const q = `SELECT ` + productColumns + `
FROM product p
WHERE p.name ILIKE '%' || $3 || '%' OR p.description ILIKE '%' || $3 || '%'
ORDER BY p.product_id
LIMIT $1 OFFSET $2`
	const countQ = `
SELECT count(*) FROM product p
WHERE p.name ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%'`

	return r.listProducts(ctx, q, countQ, []interface{}{query}, page)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM product p WHERE p.product_id = $1`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountedPrice,
		&p.Image, &p.Image2, &p.Thumbnail, &p.Display,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int, page Page) ([]domain.Product, int, error) {
	const q = `SELECT ` + productColumns + `
FROM product p
JOIN product_category pc ON pc.product_id = p.product_id
WHERE pc.category_id = $3
ORDER BY p.product_id
LIMIT $1 OFFSET $2`
	const countQ = `
SELECT count(*) FROM product_category pc WHERE pc.category_id = $1`

	return r.listProducts(ctx, q, countQ, []interface{}{categoryID}, page)
}

func (r *postgresRepo) ListByDepartment(ctx context.Context, departmentID int, page Page) ([]domain.Product, int, error) {
	const q = `SELECT DISTINCT ` + productColumns + `
FROM product p
JOIN product_category pc ON pc.product_id = p.product_id
JOIN category c ON c.category_id = pc.category_id
WHERE c.department_id = $3
ORDER BY p.product_id
LIMIT $1 OFFSET $2`
	const countQ = `
SELECT count(DISTINCT pc.product_id)
FROM product_category pc
JOIN category c ON c.category_id = pc.category_id
WHERE c.department_id = $1`

	return r.listProducts(ctx, q, countQ, []interface{}{departmentID}, page)
}

func (r *postgresRepo) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	const q = `
INSERT INTO review (customer_id, product_id, review, rating)
VALUES ($1, $2, $3, $4)
RETURNING review_id, created_on
`
	out := review
	err := r.pool.QueryRow(ctx, q, review.CustomerID, review.ProductID, review.Review, review.Rating).
		Scan(&out.ID, &out.CreatedOn)
	if err != nil {
		r.logger.Printf("product repo: create review product_id=%d error=%v", review.ProductID, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) ListReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	const q = `
SELECT rv.review_id, rv.customer_id, rv.product_id, c.name, rv.review, rv.rating, rv.created_on
FROM review rv
JOIN customer c ON c.customer_id = rv.customer_id
WHERE rv.product_id = $1
ORDER BY rv.created_on DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.CustomerID, &rv.ProductID, &rv.Name, &rv.Review, &rv.Rating, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// listProducts runs a page query followed by its count query. extra holds
// filter arguments shared by both; the page query sees them after limit and
// offset, the count query alone.
func (r *postgresRepo) listProducts(ctx context.Context, q, countQ string, extra []interface{}, page Page) ([]domain.Product, int, error) {
	args := append([]interface{}{page.Limit, page.Offset}, extra...)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountedPrice,
			&p.Image, &p.Image2, &p.Thumbnail, &p.Display,
		); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQ, extra...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
