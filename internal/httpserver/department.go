package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type departmentHandler struct {
	svc    DepartmentService
	logger *log.Logger
}

func (h *departmentHandler) list(c *gin.Context) {
	departments, err := h.svc.List(c.Request.Context())
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *departmentHandler) get(c *gin.Context) {
	id, ok := pathInt(c, "department_id")
	if !ok {
		return
	}
	dep, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeDeptNotFound, "department_id", "Don'exist department with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dep)
}
