package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"
	paysvc "shopmate-api/internal/service/payment"

	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	svc    PaymentService
	logger *log.Logger
}

type chargeRequest struct {
	OrderID      int    `json:"order_id"`
	Email        string `json:"email"`
	PaymentToken string `json:"payment_token"`
	Currency     string `json:"currency"`
}

func (h *paymentHandler) charge(c *gin.Context) {
	var req chargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	if req.PaymentToken == "" {
		failBadRequest(c, "payment_token")
		return
	}
	res, err := h.svc.Settle(c.Request.Context(), customerID(c), paysvc.ChargeInput{
		OrderID:     req.OrderID,
		Email:       req.Email,
		SourceToken: req.PaymentToken,
		Currency:    req.Currency,
	})
	if err != nil {
		var gwErr *domain.GatewayError
		switch {
		case errors.Is(err, domain.ErrOrderAlreadyPaid):
			failJSON(c, http.StatusBadRequest, codeOrderAlreadyPaid, "order_id", "The order is already paid.")
		case errors.Is(err, domain.ErrNotFound):
			failJSON(c, http.StatusNotFound, codeOrderNotFound, "order_id", "Don't exist order with this ID.")
		case errors.As(err, &gwErr):
			failJSON(c, http.StatusBadRequest, codePaymentFailed, "payment_token", gwErr.Error())
		default:
			failInternal(c, h.logger, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Charge processed successfully.", "charge": res})
}
