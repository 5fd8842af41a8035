package payment

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"shopmate-api/internal/domain"
	"shopmate-api/internal/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	order         *domain.Order
	orderErr      error
	markPaidErr   error
	markPaidCalls int
	lastAuthCode  string
	lastReference string
}

func (s *stubOrders) GetByID(_ context.Context, _ int) (*domain.Order, error) {
	return s.order, s.orderErr
}

func (s *stubOrders) MarkPaid(_ context.Context, _ int, authCode, reference string) error {
	s.markPaidCalls++
	s.lastAuthCode = authCode
	s.lastReference = reference
	return s.markPaidErr
}

type stubCustomers struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomers) GetByID(_ context.Context, _ int) (*domain.Customer, error) {
	return s.customer, s.err
}

type stubGateway struct {
	customerErr     error
	sourceErr       error
	chargeErr       error
	charge          *gateway.Charge
	customerCalls   int
	sourceCalls     int
	chargeCalls     int
	lastEmail       string
	lastAmountMinor int64
	lastCurrency    string
}

func (s *stubGateway) CreateCustomer(_ context.Context, email string) (string, error) {
	s.customerCalls++
	s.lastEmail = email
	if s.customerErr != nil {
		return "", s.customerErr
	}
	return "gw-cust-1", nil
}

func (s *stubGateway) AttachSource(_ context.Context, _, _ string) (string, error) {
	s.sourceCalls++
	if s.sourceErr != nil {
		return "", s.sourceErr
	}
	return "src-1", nil
}

func (s *stubGateway) CreateCharge(_ context.Context, amountMinor int64, currency, _ string) (*gateway.Charge, error) {
	s.chargeCalls++
	s.lastAmountMinor = amountMinor
	s.lastCurrency = currency
	if s.chargeErr != nil {
		return nil, s.chargeErr
	}
	return s.charge, nil
}

func (s *stubGateway) totalCalls() int {
	return s.customerCalls + s.sourceCalls + s.chargeCalls
}

type stubMailer struct {
	err       error
	calls     int
	lastEmail string
	lastOrder int
	lastTotal decimal.Decimal
}

func (s *stubMailer) SendOrderConfirmation(_ context.Context, toEmail string, orderID int, total decimal.Decimal) error {
	s.calls++
	s.lastEmail = toEmail
	s.lastOrder = orderID
	s.lastTotal = total
	return s.err
}

func unpaidOrder(total string) *domain.Order {
	return &domain.Order{
		ID:          7,
		CustomerID:  3,
		TotalAmount: decimal.RequireFromString(total),
		Status:      domain.OrderStatusUnpaid,
	}
}

func newTestService(orders *stubOrders, customers *stubCustomers, gw *stubGateway, mail *stubMailer) *Service {
	svc := &Service{
		orders:    orders,
		customers: customers,
		client:    gw,
		logger:    log.New(io.Discard, "", 0),
	}
	if mail != nil {
		svc.mail = mail
	}
	return svc
}

func TestSettleUnknownOrderTouchesNoGateway(t *testing.T) {
	gw := &stubGateway{}
	svc := newTestService(&stubOrders{orderErr: domain.ErrNotFound}, &stubCustomers{}, gw, &stubMailer{})

	_, err := svc.Settle(context.Background(), 3, ChargeInput{OrderID: 404, SourceToken: "tok"})

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, gw.totalCalls(), "gateway must observe zero invocations")
}

func TestSettleForeignOrderHidden(t *testing.T) {
	gw := &stubGateway{}
	svc := newTestService(&stubOrders{order: unpaidOrder("10.00")}, &stubCustomers{}, gw, &stubMailer{})

	_, err := svc.Settle(context.Background(), 99, ChargeInput{OrderID: 7, SourceToken: "tok"})

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, gw.totalCalls())
}

func TestSettleAlreadyPaidRejectedBeforeGateway(t *testing.T) {
	paid := unpaidOrder("10.00")
	paid.Status = domain.OrderStatusPaid
	gw := &stubGateway{}
	orders := &stubOrders{order: paid}
	svc := newTestService(orders, &stubCustomers{}, gw, &stubMailer{})

	_, err := svc.Settle(context.Background(), 3, ChargeInput{OrderID: 7, SourceToken: "tok"})

	require.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)
	assert.Zero(t, gw.totalCalls())
	assert.Zero(t, orders.markPaidCalls)
}

func TestSettleAttachSourceFailureLeavesOrderUnpaid(t *testing.T) {
	gw := &stubGateway{sourceErr: errors.New("card token expired")}
	orders := &stubOrders{order: unpaidOrder("25.00")}
	mail := &stubMailer{}
	svc := newTestService(orders, &stubCustomers{customer: &domain.Customer{ID: 3, Email: "a@b.test"}}, gw, mail)

	_, err := svc.Settle(context.Background(), 3, ChargeInput{OrderID: 7, SourceToken: "tok"})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, stepSource, gwErr.Step)
	assert.Zero(t, gw.chargeCalls, "charge must not run after a failed attach")
	assert.Zero(t, orders.markPaidCalls, "order must stay unpaid")
	assert.Zero(t, mail.calls, "no notification on aborted settlement")
}

func TestSettleChargesMinorUnitsAndMarksPaidOnce(t *testing.T) {
	gw := &stubGateway{charge: &gateway.Charge{ID: "ch-1", Status: "settled", AuthCode: "AUTH9"}}
	orders := &stubOrders{order: unpaidOrder("25.50")}
	mail := &stubMailer{}
	svc := newTestService(orders, &stubCustomers{customer: &domain.Customer{ID: 3, Email: "a@b.test"}}, gw, mail)

	res, err := svc.Settle(context.Background(), 3, ChargeInput{OrderID: 7, SourceToken: "tok"})

	require.NoError(t, err)
	assert.Equal(t, int64(2550), gw.lastAmountMinor)
	assert.Equal(t, "usd", gw.lastCurrency)
	assert.Equal(t, 1, orders.markPaidCalls)
	assert.Equal(t, "ch-1", orders.lastReference)
	assert.Equal(t, "AUTH9", orders.lastAuthCode)
	assert.Equal(t, "ch-1", res.ChargeID)
	assert.True(t, res.Total.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "a@b.test", mail.lastEmail)
	assert.Equal(t, 7, mail.lastOrder)
	assert.True(t, mail.lastTotal.Equal(decimal.RequireFromString("25.50")))
}

func TestSettleUsesCheckoutEmailForGatewayIdentity(t *testing.T) {
	gw := &stubGateway{charge: &gateway.Charge{ID: "ch-2"}}
	orders := &stubOrders{order: unpaidOrder("10.00")}
	mail := &stubMailer{}
	svc := newTestService(orders, &stubCustomers{customer: &domain.Customer{ID: 3, Email: "account@b.test"}}, gw, mail)

	_, err := svc.Settle(context.Background(), 3, ChargeInput{OrderID: 7, Email: "payer@b.test", SourceToken: "tok"})

	require.NoError(t, err)
	assert.Equal(t, "payer@b.test", gw.lastEmail)
	assert.Equal(t, "account@b.test", mail.lastEmail, "confirmation goes to the account address")
}

func TestSettleMailerFailureDoesNotReversePayment(t *testing.T) {
	gw := &stubGateway{charge: &gateway.Charge{ID: "ch-3"}}
	orders := &stubOrders{order: unpaidOrder("10.00")}
	mail := &stubMailer{err: errors.New("smtp down")}
	svc := newTestService(orders, &stubCustomers{customer: &domain.Customer{ID: 3, Email: "a@b.test"}}, gw, mail)

	res, err := svc.Settle(context.Background(), 3, ChargeInput{OrderID: 7, SourceToken: "tok"})

	require.NoError(t, err, "mailer failure must not fail the settlement")
	assert.Equal(t, 1, orders.markPaidCalls)
	assert.Equal(t, "ch-3", res.ChargeID)
}

func TestSettleMarkPaidConflictSurfaces(t *testing.T) {
	gw := &stubGateway{charge: &gateway.Charge{ID: "ch-4"}}
	orders := &stubOrders{order: unpaidOrder("10.00"), markPaidErr: domain.ErrOrderAlreadyPaid}
	mail := &stubMailer{}
	svc := newTestService(orders, &stubCustomers{customer: &domain.Customer{ID: 3, Email: "a@b.test"}}, gw, mail)

	_, err := svc.Settle(context.Background(), 3, ChargeInput{OrderID: 7, SourceToken: "tok"})

	require.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)
	assert.Zero(t, mail.calls, "no notification when the paid flag was lost to a concurrent settle")
}
