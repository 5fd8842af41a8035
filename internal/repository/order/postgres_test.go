package order

import (
	"context"
	"errors"
	"os"
	"testing"

	"shopmate-api/internal/domain"
	"shopmate-api/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func TestPostgres_CreateFromCartTotalsMatchDetails(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)
	customerID, shippingID, taxID := seedReferences(ctx, t, pool)

	p1 := insertProduct(ctx, t, pool, "Scarf", "14.99")
	p2 := insertProduct(ctx, t, pool, "Mug", "9.50")
	insertCartItem(ctx, t, pool, "cart-1", p1, 2)
	insertCartItem(ctx, t, pool, "cart-1", p2, 3)

	repo := NewPostgres(pool, nil)
	orderID, err := repo.CreateFromCart(ctx, CreateInput{
		CartID:     "cart-1",
		ShippingID: shippingID,
		TaxID:      taxID,
		CustomerID: customerID,
	})
	if err != nil {
		t.Fatalf("CreateFromCart: %v", err)
	}

	o, err := repo.GetByID(ctx, orderID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	details, err := repo.ListDetails(ctx, orderID)
	if err != nil {
		t.Fatalf("ListDetails: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 detail rows, got %d", len(details))
	}

	sum := decimal.Zero
	for _, d := range details {
		if !d.SubTotal.Equal(d.UnitCost.Mul(decimal.NewFromInt(int64(d.Quantity)))) {
			t.Fatalf("sub_total mismatch on detail %+v", d)
		}
		sum = sum.Add(d.SubTotal)
	}
	if !o.TotalAmount.Equal(sum) {
		t.Fatalf("total_amount %s != sum of sub_totals %s", o.TotalAmount, sum)
	}
	if !o.TotalAmount.Equal(decimal.RequireFromString("58.48")) {
		t.Fatalf("unexpected total %s", o.TotalAmount)
	}
}

func TestPostgres_CreateFromCartEmptyCartPersistsNothing(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)
	customerID, shippingID, taxID := seedReferences(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	_, err := repo.CreateFromCart(ctx, CreateInput{
		CartID:     "no-such-cart",
		ShippingID: shippingID,
		TaxID:      taxID,
		CustomerID: customerID,
	})

	var refErr *domain.ReferenceNotFoundError
	if !errors.As(err, &refErr) || refErr.Field != "cart" {
		t.Fatalf("expected cart reference error, got %v", err)
	}

	var orders, details int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&orders); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM order_detail`).Scan(&details); err != nil {
		t.Fatalf("count details: %v", err)
	}
	if orders != 0 || details != 0 {
		t.Fatalf("rows persisted for an empty cart: orders=%d details=%d", orders, details)
	}
}

func TestPostgres_MarkPaidOnlyOnce(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)
	customerID, shippingID, taxID := seedReferences(ctx, t, pool)

	pid := insertProduct(ctx, t, pool, "Scarf", "10.00")
	insertCartItem(ctx, t, pool, "cart-1", pid, 1)

	repo := NewPostgres(pool, nil)
	orderID, err := repo.CreateFromCart(ctx, CreateInput{
		CartID:     "cart-1",
		ShippingID: shippingID,
		TaxID:      taxID,
		CustomerID: customerID,
	})
	if err != nil {
		t.Fatalf("CreateFromCart: %v", err)
	}

	if err := repo.MarkPaid(ctx, orderID, "AUTH1", "ch-1"); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if err := repo.MarkPaid(ctx, orderID, "AUTH2", "ch-2"); !errors.Is(err, domain.ErrOrderAlreadyPaid) {
		t.Fatalf("second MarkPaid must report already paid, got %v", err)
	}

	o, err := repo.GetByID(ctx, orderID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if o.Status != domain.OrderStatusPaid || o.AuthCode != "AUTH1" || o.Reference != "ch-1" {
		t.Fatalf("first settlement must win: %+v", o)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_detail, orders, shopping_cart, review, product_attribute, product_category, product, attribute_value, attribute, customer, shipping, shipping_region, tax, category, department RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func seedReferences(ctx context.Context, t *testing.T, pool *pgxpool.Pool) (customerID, shippingID, taxID int) {
	t.Helper()
	err := pool.QueryRow(ctx, `INSERT INTO customer (name, email, password_hash) VALUES ('Ann', 'ann@b.test', 'x') RETURNING customer_id`).Scan(&customerID)
	if err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	var regionID int
	if err := pool.QueryRow(ctx, `INSERT INTO shipping_region (shipping_region) VALUES ('US') RETURNING shipping_region_id`).Scan(&regionID); err != nil {
		t.Fatalf("insert shipping region: %v", err)
	}
	err = pool.QueryRow(ctx, `INSERT INTO shipping (shipping_type, shipping_cost, shipping_region_id) VALUES ('Ground', 5.00, $1) RETURNING shipping_id`, regionID).Scan(&shippingID)
	if err != nil {
		t.Fatalf("insert shipping: %v", err)
	}
	err = pool.QueryRow(ctx, `INSERT INTO tax (tax_type, tax_percentage) VALUES ('Sales', 8.50) RETURNING tax_id`).Scan(&taxID)
	if err != nil {
		t.Fatalf("insert tax: %v", err)
	}
	return customerID, shippingID, taxID
}

func insertProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, name, price string) int {
	t.Helper()
	var id int
	err := pool.QueryRow(ctx, `INSERT INTO product (name, price) VALUES ($1, $2) RETURNING product_id`, name, price).Scan(&id)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}

func insertCartItem(ctx context.Context, t *testing.T, pool *pgxpool.Pool, cartID string, productID, quantity int) {
	t.Helper()
	if _, err := pool.Exec(ctx, `INSERT INTO shopping_cart (cart_id, product_id, quantity) VALUES ($1, $2, $3)`, cartID, productID, quantity); err != nil {
		t.Fatalf("insert cart item: %v", err)
	}
}
