package customer

import (
	"context"

	"shopmate-api/internal/domain"
)

// ProfileUpdate carries the contact fields a customer may change.
type ProfileUpdate struct {
	Name     string
	Email    string
	DayPhone string
	EvePhone string
	MobPhone string
}

// AddressUpdate carries the address fields a customer may change.
type AddressUpdate struct {
	Address1         string
	Address2         string
	City             string
	Region           string
	PostalCode       string
	Country          string
	ShippingRegionID int
}

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id int, in ProfileUpdate) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, id int, in AddressUpdate) (*domain.Customer, error)
	UpdateCreditCard(ctx context.Context, id int, creditCard string) (*domain.Customer, error)
}
