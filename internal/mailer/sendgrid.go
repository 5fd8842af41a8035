package mailer

import (
	"context"
	"fmt"

	"shopmate-api/internal/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type sendgridMailer struct {
	client *sendgrid.Client
	from   string
}

func NewSendGrid(cfg config.Mail) Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridKey),
		from:   cfg.FromAddress,
	}
}

func (m *sendgridMailer) SendOrderConfirmation(ctx context.Context, toEmail string, orderID int, total decimal.Decimal) error {
	from := mail.NewEmail("Shopmate", m.from)
	to := mail.NewEmail("", toEmail)
	subject := "Order Confirmed"
	body := fmt.Sprintf("Your order #%d totalling $%s has been placed and paid. Thank you for shopping with us.",
		orderID, total.StringFixed(2))

	message := mail.NewSingleEmail(from, subject, to, body, body)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}
