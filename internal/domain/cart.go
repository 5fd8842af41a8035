package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one row of a shopping cart: a product reference, a quantity
// and a free-form attribute selection. The cart id itself is an opaque
// bearer capability; carts have no owner.
type CartItem struct {
	ItemID     int       `json:"item_id"`
	CartID     string    `json:"cart_id"`
	ProductID  int       `json:"product_id"`
	Attributes string    `json:"attributes"`
	Quantity   int       `json:"quantity"`
	AddedOn    time.Time `json:"-"`
}

// CartLine is a cart item joined with its product's current name, price and
// image, priced per line. This is the shape the cart reader returns and the
// order aggregator snapshots from.
type CartLine struct {
	CartID          string          `json:"cart_id"`
	ItemID          int             `json:"item_id"`
	Name            string          `json:"name"`
	Attributes      string          `json:"attributes"`
	ProductID       int             `json:"product_id"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Image           string          `json:"image"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	SubTotal        decimal.Decimal `json:"sub_total"`
}
