package payment

import (
	"context"
	"io"
	"log"

	"shopmate-api/internal/domain"
	"shopmate-api/internal/gateway"

	"github.com/shopspring/decimal"
)

// settlement step names, used for logging and gateway error context.
const (
	stepCustomer = "register-customer"
	stepSource   = "attach-source"
	stepCharge   = "create-charge"
)

type orderRepo interface {
	GetByID(ctx context.Context, orderID int) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID int, authCode, reference string) error
}

type customerRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
}

type mailer interface {
	SendOrderConfirmation(ctx context.Context, toEmail string, orderID int, total decimal.Decimal) error
}

// Service drives the payment settlement handshake against the gateway:
// register a customer identity, attach the submitted source token, charge
// the order total, then mark the order paid. Any gateway failure aborts the
// run and leaves the order unpaid so the customer can retry.
type Service struct {
	orders    orderRepo
	customers customerRepo
	client    gateway.Client
	mail      mailer
	logger    *log.Logger
}

func New(orders orderRepo, customers customerRepo, client gateway.Client, mail mailer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, customers: customers, client: client, mail: mail, logger: logger}
}

type ChargeInput struct {
	OrderID     int    `json:"order_id"`
	Email       string `json:"email"`
	SourceToken string `json:"payment_token"`
	Currency    string `json:"currency"`
}

// Result reports a completed settlement.
type Result struct {
	OrderID     int             `json:"order_id"`
	ChargeID    string          `json:"charge_id"`
	Status      string          `json:"status"`
	AmountMinor int64           `json:"amount"`
	Total       decimal.Decimal `json:"total_amount"`
}

// Settle charges the order and marks it paid. The order and its owner are
// resolved before the gateway is touched: an unknown or foreign order, or
// one already paid, costs zero gateway calls.
func (s *Service) Settle(ctx context.Context, customerID int, in ChargeInput) (*Result, error) {
	o, err := s.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}
	if o.Status == domain.OrderStatusPaid {
		return nil, domain.ErrOrderAlreadyPaid
	}
	cust, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}
	// The payer may check out under a different email; the confirmation
	// still goes to the account's address.
	payerEmail := in.Email
	if payerEmail == "" {
		payerEmail = cust.Email
	}
	amountMinor := o.TotalAmount.Mul(decimal.NewFromInt(100)).IntPart()

	gwCustomerID, err := s.client.CreateCustomer(ctx, payerEmail)
	if err != nil {
		return nil, s.abort(in.OrderID, stepCustomer, err)
	}
	sourceRef, err := s.client.AttachSource(ctx, gwCustomerID, in.SourceToken)
	if err != nil {
		return nil, s.abort(in.OrderID, stepSource, err)
	}
	charge, err := s.client.CreateCharge(ctx, amountMinor, currency, sourceRef)
	if err != nil {
		return nil, s.abort(in.OrderID, stepCharge, err)
	}

	if err := s.orders.MarkPaid(ctx, in.OrderID, charge.AuthCode, charge.ID); err != nil {
		// The money moved but our flag did not. Surface the error loudly;
		// reconciliation against the gateway's records sorts it out.
		s.logger.Printf("payment: order %d charged (%s) but not marked paid: %v", in.OrderID, charge.ID, err)
		return nil, err
	}
	s.logger.Printf("payment: order %d settled charge=%s amount=%d %s", in.OrderID, charge.ID, amountMinor, currency)

	if s.mail != nil {
		if err := s.mail.SendOrderConfirmation(ctx, cust.Email, in.OrderID, o.TotalAmount); err != nil {
			s.logger.Printf("payment: confirmation mail for order %d failed: %v", in.OrderID, err)
		}
	}

	return &Result{
		OrderID:     in.OrderID,
		ChargeID:    charge.ID,
		Status:      charge.Status,
		AmountMinor: amountMinor,
		Total:       o.TotalAmount,
	}, nil
}

func (s *Service) abort(orderID int, step string, err error) error {
	s.logger.Printf("payment: order %d aborted at %s: %v", orderID, step, err)
	return &domain.GatewayError{Step: step, Err: err}
}
