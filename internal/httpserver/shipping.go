package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type shippingHandler struct {
	svc    ShippingService
	logger *log.Logger
}

func (h *shippingHandler) listRegions(c *gin.Context) {
	regions, err := h.svc.ListRegions(c.Request.Context())
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

func (h *shippingHandler) listInRegion(c *gin.Context) {
	id, ok := pathInt(c, "shipping_region_id")
	if !ok {
		return
	}
	options, err := h.svc.ListByRegion(c.Request.Context(), id)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, options)
}
