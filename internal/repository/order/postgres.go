package order

import (
	"context"
	"errors"
	"io"
	"log"

	"shopmate-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

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

func (r *postgresRepo) CreateFromCart(ctx context.Context, in CreateInput) (int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// One read serves as both the existence check and the snapshot source,
	// so a concurrent cart edit cannot slip between the two.
	const linesQ = `
SELECT sc.product_id, p.name, sc.attributes, sc.quantity, p.price::text
FROM shopping_cart sc
JOIN product p ON p.product_id = sc.product_id
WHERE sc.cart_id = $1
ORDER BY sc.item_id
`
	rows, err := tx.Query(ctx, linesQ, in.CartID)
	if err != nil {
		return 0, err
	}

	type snapshot struct {
		productID int
		name      string
		attrs     string
		quantity  int
		unitCost  decimal.Decimal
	}
	var lines []snapshot
	for rows.Next() {
		var s snapshot
		if err := rows.Scan(&s.productID, &s.name, &s.attrs, &s.quantity, &s.unitCost); err != nil {
			rows.Close()
			return 0, err
		}
		lines = append(lines, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, &domain.ReferenceNotFoundError{Field: "cart", ID: in.CartID}
	}

	const orderQ = `
INSERT INTO orders (customer_id, shipping_id, tax_id)
VALUES ($1, $2, $3)
RETURNING order_id
`
	var orderID int
	if err := tx.QueryRow(ctx, orderQ, in.CustomerID, in.ShippingID, in.TaxID).Scan(&orderID); err != nil {
		return 0, err
	}

	const detailQ = `
INSERT INTO order_detail (order_id, product_id, attributes, product_name, quantity, unit_cost, sub_total)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	total := decimal.Zero
	for _, line := range lines {
		subTotal := line.unitCost.Mul(decimal.NewFromInt(int64(line.quantity)))
		total = total.Add(subTotal)
		if _, err := tx.Exec(ctx, detailQ,
			orderID, line.productID, line.attrs, line.name, line.quantity, line.unitCost, subTotal,
		); err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET total_amount = $1 WHERE order_id = $2`, total, orderID); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	r.logger.Printf("order repo: created order_id=%d cart_id=%s lines=%d total=%s", orderID, in.CartID, len(lines), total)
	return orderID, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID int) (*domain.Order, error) {
	const q = `
SELECT order_id, total_amount::text, created_on, shipped_on, status, comments,
       customer_id, auth_code, reference, shipping_id, tax_id
FROM orders
WHERE order_id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, orderID).Scan(
		&o.ID,
		&o.TotalAmount,
		&o.CreatedOn,
		&o.ShippedOn,
		&o.Status,
		&o.Comments,
		&o.CustomerID,
		&o.AuthCode,
		&o.Reference,
		&o.ShippingID,
		&o.TaxID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListDetails(ctx context.Context, orderID int) ([]domain.OrderDetail, error) {
	const q = `
SELECT item_id, order_id, product_id, attributes, product_name, quantity, unit_cost::text, sub_total::text
FROM order_detail
WHERE order_id = $1
ORDER BY item_id
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []domain.OrderDetail{}
	for rows.Next() {
		var d domain.OrderDetail
		if err := rows.Scan(&d.ItemID, &d.OrderID, &d.ProductID, &d.Attributes, &d.ProductName, &d.Quantity, &d.UnitCost, &d.SubTotal); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *postgresRepo) GetSummary(ctx context.Context, orderID int) (*domain.OrderSummary, error) {
	const q = `
SELECT o.order_id, o.total_amount::text, o.created_on, o.shipped_on, o.status, c.name
FROM orders o
JOIN customer c ON c.customer_id = o.customer_id
WHERE o.order_id = $1
`
	var s domain.OrderSummary
	err := r.pool.QueryRow(ctx, q, orderID).Scan(&s.OrderID, &s.TotalAmount, &s.CreatedOn, &s.ShippedOn, &s.Status, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int) ([]domain.OrderSummary, error) {
	const q = `
SELECT o.order_id, o.total_amount::text, o.created_on, o.shipped_on, o.status, c.name
FROM orders o
JOIN customer c ON c.customer_id = o.customer_id
WHERE o.customer_id = $1
ORDER BY o.order_id DESC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.OrderSummary{}
	for rows.Next() {
		var s domain.OrderSummary
		if err := rows.Scan(&s.OrderID, &s.TotalAmount, &s.CreatedOn, &s.ShippedOn, &s.Status, &s.Name); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *postgresRepo) MarkPaid(ctx context.Context, orderID int, authCode, reference string) error {
	const q = `
UPDATE orders
SET status = $1, auth_code = $2, reference = $3
WHERE order_id = $4 AND status = $5
`
	cmd, err := r.pool.Exec(ctx, q, domain.OrderStatusPaid, authCode, reference, orderID, domain.OrderStatusUnpaid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrderAlreadyPaid
	}
	return nil
}
