package mailer

import (
	"context"

	"github.com/shopspring/decimal"
)

// Mailer delivers order confirmation messages. Delivery is best effort;
// callers log failures and move on.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, toEmail string, orderID int, total decimal.Decimal) error
}
