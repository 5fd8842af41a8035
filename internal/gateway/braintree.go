package gateway

import (
	"context"
	"fmt"

	"shopmate-api/internal/config"

	"github.com/braintree-go/braintree-go"
)

type braintreeClient struct {
	gateway *braintree.Braintree
}

// NewBraintree initializes the Braintree SDK gateway. The merchant account
// fixes the settlement currency, so CreateCharge's currency argument is
// informational here.
func NewBraintree(cfg config.Braintree) Client {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	return &braintreeClient{
		gateway: braintree.New(
			env,
			cfg.MerchantID,
			cfg.PublicKey,
			cfg.PrivateKey,
		),
	}
}

func (c *braintreeClient) CreateCustomer(ctx context.Context, email string) (string, error) {
	customer, err := c.gateway.Customer().Create(ctx, &braintree.CustomerRequest{
		Email: email,
	})
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return customer.Id, nil
}

func (c *braintreeClient) AttachSource(ctx context.Context, customerID, sourceToken string) (string, error) {
	method, err := c.gateway.PaymentMethod().Create(ctx, &braintree.PaymentMethodRequest{
		CustomerId:         customerID,
		PaymentMethodNonce: sourceToken,
	})
	if err != nil {
		return "", fmt.Errorf("attach source: %w", err)
	}
	return method.GetToken(), nil
}

func (c *braintreeClient) CreateCharge(ctx context.Context, amountMinor int64, currency, sourceRef string) (*Charge, error) {
	tx, err := c.gateway.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(amountMinor, 2),
		PaymentMethodToken: sourceRef,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create charge: %w", err)
	}
	if tx.Status == braintree.TransactionStatusProcessorDeclined {
		return nil, fmt.Errorf("charge declined: %s", tx.ProcessorResponseText)
	}

	return &Charge{
		ID:       tx.Id,
		Status:   string(tx.Status),
		AuthCode: tx.ProcessorAuthorizationCode,
	}, nil
}
