package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status flag, stored as an integer.
const (
	OrderStatusUnpaid = 0
	OrderStatusPaid   = 1
)

type Order struct {
	ID          int             `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedOn   time.Time       `json:"created_on"`
	ShippedOn   *time.Time      `json:"shipped_on"`
	Status      int             `json:"status"`
	Comments    string          `json:"comments,omitempty"`
	CustomerID  int             `json:"customer_id"`
	AuthCode    string          `json:"auth_code,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	ShippingID  int             `json:"shipping_id"`
	TaxID       int             `json:"tax_id"`
}

// OrderDetail is an immutable snapshot of one cart line taken at order
// creation. It is never updated afterwards.
type OrderDetail struct {
	ItemID      int             `json:"item_id"`
	OrderID     int             `json:"order_id"`
	ProductID   int             `json:"product_id"`
	Attributes  string          `json:"attributes"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	SubTotal    decimal.Decimal `json:"sub_total"`
}

// OrderSummary is the short-detail read mode: no line items, customer name
// included.
type OrderSummary struct {
	OrderID     int             `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedOn   time.Time       `json:"created_on"`
	ShippedOn   *time.Time      `json:"shipped_on"`
	Status      int             `json:"status"`
	Name        string          `json:"name"`
}
