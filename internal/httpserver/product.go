package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"shopmate-api/internal/domain"
	prodsvc "shopmate-api/internal/service/product"

	"github.com/gin-gonic/gin"
)

type productHandler struct {
	svc    ProductService
	logger *log.Logger
}

func listParams(c *gin.Context) (prodsvc.ListParams, int, int) {
	page, limit := pageParams(c)
	return prodsvc.ListParams{
		Page:              page,
		Limit:             limit,
		DescriptionLength: descriptionLength(c),
	}, page, limit
}

func (h *productHandler) list(c *gin.Context) {
	params, page, limit := listParams(c)
	res, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, paginate(c, res.Products, page, limit, res.Total))
}

func (h *productHandler) search(c *gin.Context) {
	params, page, limit := listParams(c)
	res, err := h.svc.Search(c.Request.Context(), c.Query("query_string"), params)
	if err != nil {
		if isValidation(err) {
			failValidation(c, err)
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, paginate(c, res.Products, page, limit, res.Total))
}

func (h *productHandler) get(c *gin.Context) {
	id, ok := pathInt(c, "product_id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeProductNotFound, "product_id", "Don't exist product with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *productHandler) listInCategory(c *gin.Context) {
	id, ok := pathInt(c, "category_id")
	if !ok {
		return
	}
	params, page, limit := listParams(c)
	res, err := h.svc.ListByCategory(c.Request.Context(), id, params)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, paginate(c, res.Products, page, limit, res.Total))
}

func (h *productHandler) listInDepartment(c *gin.Context) {
	id, ok := pathInt(c, "department_id")
	if !ok {
		return
	}
	params, page, limit := listParams(c)
	res, err := h.svc.ListByDepartment(c.Request.Context(), id, params)
	if err != nil {
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, paginate(c, res.Products, page, limit, res.Total))
}

func (h *productHandler) listReviews(c *gin.Context) {
	id, ok := pathInt(c, "product_id")
	if !ok {
		return
	}
	reviews, err := h.svc.ListReviews(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeProductNotFound, "product_id", "Don't exist product with this ID.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type reviewRequest struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

func (h *productHandler) createReview(c *gin.Context) {
	id, ok := pathInt(c, "product_id")
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	review, err := h.svc.AddReview(c.Request.Context(), customerID(c), id, req.Review, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			failJSON(c, http.StatusNotFound, codeProductNotFound, "product_id", "Don't exist product with this ID.")
		case isValidation(err):
			failValidation(c, err)
		default:
			failInternal(c, h.logger, err)
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}

// pathInt parses an integer path parameter, rejecting the request with a
// field-level error when it is not a number.
func pathInt(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		failBadRequest(c, name)
		return 0, false
	}
	return id, true
}
