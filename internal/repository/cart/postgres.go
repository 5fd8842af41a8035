package cart

import (
	"context"
	"errors"

	"shopmate-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) AddItem(ctx context.Context, in AddItemInput) (*domain.CartItem, error) {
	const q = `
INSERT INTO shopping_cart (cart_id, product_id, attributes, quantity)
VALUES ($1, $2, $3, $4)
RETURNING item_id, cart_id, product_id, attributes, quantity, added_on
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, in.CartID, in.ProductID, in.Attributes, in.Quantity).Scan(
		&item.ItemID,
		&item.CartID,
		&item.ProductID,
		&item.Attributes,
		&item.Quantity,
		&item.AddedOn,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListLines returns the cart's rows joined with each product's current name,
// price and image. An unknown cart id yields an empty slice, not an error.
func (r *postgresRepo) ListLines(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	const q = `
SELECT sc.cart_id, sc.item_id, p.name, sc.attributes, sc.product_id,
       p.price::text, sc.quantity, p.image, p.discounted_price::text
FROM shopping_cart sc
JOIN product p ON p.product_id = sc.product_id
WHERE sc.cart_id = $1
ORDER BY sc.item_id
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []domain.CartLine{}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.CartID,
			&line.ItemID,
			&line.Name,
			&line.Attributes,
			&line.ProductID,
			&line.Price,
			&line.Quantity,
			&line.Image,
			&line.DiscountedPrice,
		); err != nil {
			return nil, err
		}
		line.SubTotal = line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *postgresRepo) GetItem(ctx context.Context, itemID int) (*domain.CartItem, error) {
	const q = `
SELECT item_id, cart_id, product_id, attributes, quantity, added_on
FROM shopping_cart
WHERE item_id = $1
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, itemID).Scan(
		&item.ItemID,
		&item.CartID,
		&item.ProductID,
		&item.Attributes,
		&item.Quantity,
		&item.AddedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, itemID, quantity int) (*domain.CartItem, error) {
	const q = `
UPDATE shopping_cart
SET quantity = $1
WHERE item_id = $2
RETURNING item_id, cart_id, product_id, attributes, quantity, added_on
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, quantity, itemID).Scan(
		&item.ItemID,
		&item.CartID,
		&item.ProductID,
		&item.Attributes,
		&item.Quantity,
		&item.AddedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, itemID int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shopping_cart WHERE item_id = $1`, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Exists(ctx context.Context, cartID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shopping_cart WHERE cart_id = $1)`, cartID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) Empty(ctx context.Context, cartID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM shopping_cart WHERE cart_id = $1`, cartID)
	return err
}
