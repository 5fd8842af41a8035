package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"
	cartsvc "shopmate-api/internal/service/cart"

	"github.com/gin-gonic/gin"
)

type cartHandler struct {
	svc    CartService
	logger *log.Logger
}

func (h *cartHandler) generateID(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart_id": h.svc.GenerateID()})
}

type addItemRequest struct {
	CartID     string `json:"cart_id"`
	ProductID  int    `json:"product_id"`
	Attributes string `json:"attributes"`
	Quantity   int    `json:"quantity"`
}

func (h *cartHandler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	lines, err := h.svc.AddItem(c.Request.Context(), cartsvc.AddItemInput{
		CartID:     req.CartID,
		ProductID:  req.ProductID,
		Attributes: req.Attributes,
		Quantity:   req.Quantity,
	})
	if err != nil {
		var refErr *domain.ReferenceNotFoundError
		switch {
		case errors.As(err, &refErr):
			failJSON(c, http.StatusBadRequest, codeProductNotFound, refErr.Field, "Don't exist product with this ID.")
		case isValidation(err):
			failValidation(c, err)
		default:
			failInternal(c, h.logger, err)
		}
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *cartHandler) list(c *gin.Context) {
	lines, err := h.svc.List(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *cartHandler) updateItem(c *gin.Context) {
	id, ok := pathInt(c, "item_id")
	if !ok {
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	lines, err := h.svc.UpdateItem(c.Request.Context(), id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			failJSON(c, http.StatusNotFound, codeItemNotFound, "item_id", "Don't exist item with this ID.")
		case isValidation(err):
			failValidation(c, err)
		default:
			failInternal(c, h.logger, err)
		}
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *cartHandler) empty(c *gin.Context) {
	if err := h.svc.Empty(c.Request.Context(), c.Param("cart_id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeCartNotFound, "cart_id", "Don't exist cart with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, []interface{}{})
}

func (h *cartHandler) removeItem(c *gin.Context) {
	id, ok := pathInt(c, "item_id")
	if !ok {
		return
	}
	if err := h.svc.RemoveItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeItemNotFound, "item_id", "Don't exist item with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
