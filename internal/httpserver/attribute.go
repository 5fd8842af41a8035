package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type attributeHandler struct {
	svc    AttributeService
	logger *log.Logger
}

func (h *attributeHandler) list(c *gin.Context) {
	attributes, err := h.svc.List(c.Request.Context())
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, attributes)
}

func (h *attributeHandler) get(c *gin.Context) {
	id, ok := pathInt(c, "attribute_id")
	if !ok {
		return
	}
	attr, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeAttrNotFound, "attribute_id", "Don't exist attribute with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, attr)
}

func (h *attributeHandler) listValues(c *gin.Context) {
	id, ok := pathInt(c, "attribute_id")
	if !ok {
		return
	}
	values, err := h.svc.ListValues(c.Request.Context(), id)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (h *attributeHandler) listInProduct(c *gin.Context) {
	id, ok := pathInt(c, "product_id")
	if !ok {
		return
	}
	attrs, err := h.svc.ListByProduct(c.Request.Context(), id)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, attrs)
}
