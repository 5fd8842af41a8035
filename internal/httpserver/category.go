package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	svc    CategoryService
	logger *log.Logger
}

func (h *categoryHandler) list(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": categories})
}

func (h *categoryHandler) get(c *gin.Context) {
	id, ok := pathInt(c, "category_id")
	if !ok {
		return
	}
	cat, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeCategoryNotFound, "category_id", "Don't exist category with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *categoryHandler) listInDepartment(c *gin.Context) {
	id, ok := pathInt(c, "department_id")
	if !ok {
		return
	}
	categories, err := h.svc.ListByDepartment(c.Request.Context(), id)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *categoryHandler) listInProduct(c *gin.Context) {
	id, ok := pathInt(c, "product_id")
	if !ok {
		return
	}
	categories, err := h.svc.ListByProduct(c.Request.Context(), id)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
