package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"
	ordersvc "shopmate-api/internal/service/order"

	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	svc    OrderService
	logger *log.Logger
}

type createOrderRequest struct {
	CartID     string `json:"cart_id"`
	ShippingID int    `json:"shipping_id"`
	TaxID      int    `json:"tax_id"`
}

func (h *orderHandler) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	orderID, err := h.svc.Create(c.Request.Context(), customerID(c), ordersvc.CreateInput{
		CartID:     req.CartID,
		ShippingID: req.ShippingID,
		TaxID:      req.TaxID,
	})
	if err != nil {
		var refErr *domain.ReferenceNotFoundError
		switch {
		case errors.As(err, &refErr):
			failJSON(c, http.StatusBadRequest, referenceCode(refErr.Field), refErr.Field, refErr.Error())
		case isValidation(err):
			failValidation(c, err)
		default:
			failInternal(c, h.logger, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
}

// referenceCode maps the failed order reference to its error code.
func referenceCode(field string) string {
	switch field {
	case "shipping_id":
		return codeShippingNotFound
	case "tax_id":
		return codeTaxNotFound
	default:
		return codeCartNotFound
	}
}

func (h *orderHandler) listMine(c *gin.Context) {
	orders, err := h.svc.ListByCustomer(c.Request.Context(), customerID(c))
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	if len(orders) == 0 {
		failJSON(c, http.StatusNotFound, codeOrderNotFound, "customer_id", "No orders for this customer.")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *orderHandler) shortDetail(c *gin.Context) {
	id, ok := pathInt(c, "order_id")
	if !ok {
		return
	}
	summary, err := h.svc.GetSummary(c.Request.Context(), customerID(c), id)
	if err != nil {
		h.lookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *orderHandler) detail(c *gin.Context) {
	id, ok := pathInt(c, "order_id")
	if !ok {
		return
	}
	details, err := h.svc.Get(c.Request.Context(), customerID(c), id)
	if err != nil {
		h.lookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": id, "order_items": details})
}

func (h *orderHandler) lookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		failJSON(c, http.StatusNotFound, codeOrderNotFound, "order_id", "Don't exist order with this ID.")
		return
	}
	failInternal(c, h.logger, err)
}
