package domain

import "github.com/shopspring/decimal"

type ShippingRegion struct {
	ID     int    `json:"shipping_region_id"`
	Region string `json:"shipping_region"`
}

// Shipping is a static shipping option within a region, selected by id at
// order creation.
type Shipping struct {
	ID       int             `json:"shipping_id"`
	Type     string          `json:"shipping_type"`
	Cost     decimal.Decimal `json:"shipping_cost"`
	RegionID int             `json:"shipping_region_id"`
}

// Tax is a static tax option selected by id at order creation.
type Tax struct {
	ID         int             `json:"tax_id"`
	Type       string          `json:"tax_type"`
	Percentage decimal.Decimal `json:"tax_percentage"`
}
