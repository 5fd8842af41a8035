package domain

// Customer represents a registered shopper. Address and payment-card fields
// are empty until filled in through profile updates.
type Customer struct {
	ID               int    `json:"customer_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PasswordHash     string `json:"-"`
	CreditCard       string `json:"credit_card"`
	Address1         string `json:"address_1"`
	Address2         string `json:"address_2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	ShippingRegionID int    `json:"shipping_region_id"`
	DayPhone         string `json:"day_phone"`
	EvePhone         string `json:"eve_phone"`
	MobPhone         string `json:"mob_phone"`
}
