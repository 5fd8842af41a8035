package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int             `json:"product_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Image           string          `json:"image"`
	Image2          string          `json:"image_2"`
	Thumbnail       string          `json:"thumbnail"`
	Display         int             `json:"display"`
}

// Review is a customer's rating of a product.
type Review struct {
	ID         int       `json:"review_id"`
	CustomerID int       `json:"-"`
	ProductID  int       `json:"product_id"`
	Name       string    `json:"name,omitempty"`
	Review     string    `json:"review"`
	Rating     int       `json:"rating"`
	CreatedOn  time.Time `json:"created_on"`
}
