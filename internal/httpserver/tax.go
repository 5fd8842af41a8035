package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type taxHandler struct {
	svc    TaxService
	logger *log.Logger
}

func (h *taxHandler) list(c *gin.Context) {
	taxes, err := h.svc.List(c.Request.Context())
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, taxes)
}

func (h *taxHandler) get(c *gin.Context) {
	id, ok := pathInt(c, "tax_id")
	if !ok {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeTaxNotFound, "tax_id", "Don't exist tax with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
