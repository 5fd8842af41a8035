package customer

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"shopmate-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `
customer_id, name, email, password_hash, credit_card, address_1, address_2,
city, region, postal_code, country, shipping_region_id, day_phone, eve_phone, mob_phone`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customer (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, c.Name, strings.ToLower(c.Email), c.PasswordHash))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customer WHERE lower(email) = lower($1) LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customer WHERE customer_id = $1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id int, in ProfileUpdate) (*domain.Customer, error) {
	const q = `
UPDATE customer
SET name = $1, email = $2, day_phone = $3, eve_phone = $4, mob_phone = $5
WHERE customer_id = $6
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, in.Name, strings.ToLower(in.Email), in.DayPhone, in.EvePhone, in.MobPhone, id))
}

func (r *postgresRepo) UpdateAddress(ctx context.Context, id int, in AddressUpdate) (*domain.Customer, error) {
	const q = `
UPDATE customer
SET address_1 = $1, address_2 = $2, city = $3, region = $4,
    postal_code = $5, country = $6, shipping_region_id = $7
WHERE customer_id = $8
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q,
		in.Address1, in.Address2, in.City, in.Region, in.PostalCode, in.Country, in.ShippingRegionID, id))
}

func (r *postgresRepo) UpdateCreditCard(ctx context.Context, id int, creditCard string) (*domain.Customer, error) {
	const q = `
UPDATE customer
SET credit_card = $1
WHERE customer_id = $2
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, creditCard, id))
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.PasswordHash,
		&c.CreditCard,
		&c.Address1,
		&c.Address2,
		&c.City,
		&c.Region,
		&c.PostalCode,
		&c.Country,
		&c.ShippingRegionID,
		&c.DayPhone,
		&c.EvePhone,
		&c.MobPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
