package gateway

import "context"

// Charge is the gateway's record of a captured payment.
type Charge struct {
	ID       string
	Status   string
	AuthCode string
}

// Client is the payment provider handshake used by the payment service:
// register a customer identity, attach their payment source, charge it.
// Amounts are in minor units (cents for usd).
type Client interface {
	CreateCustomer(ctx context.Context, email string) (string, error)
	AttachSource(ctx context.Context, customerID, sourceToken string) (string, error)
	CreateCharge(ctx context.Context, amountMinor int64, currency, sourceRef string) (*Charge, error)
}
