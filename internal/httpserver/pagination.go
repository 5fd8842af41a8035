package httpserver

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// paginationMeta describes one page of a list response.
type paginationMeta struct {
	CurrentPage     int `json:"currentPage"`
	CurrentPageSize int `json:"currentPageSize"`
	TotalPages      int `json:"totalPages"`
	TotalRecords    int `json:"totalRecords"`
}

type pageLinks struct {
	PreviousPage string `json:"previousPage,omitempty"`
	NextPage     string `json:"nextPage,omitempty"`
}

type pagedResponse struct {
	PaginationMeta paginationMeta `json:"paginationMeta"`
	Links          pageLinks      `json:"links"`
	Rows           interface{}    `json:"rows"`
}

// pageParams reads ?page= and ?limit= with 1-based pages.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

func descriptionLength(c *gin.Context) int {
	n, _ := strconv.Atoi(c.DefaultQuery("description_length", "200"))
	if n < 1 {
		n = 200
	}
	return n
}

// paginate wraps rows with metadata and relative previous/next links built
// from the request path.
func paginate(c *gin.Context, rows interface{}, page, limit, total int) pagedResponse {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	var links pageLinks
	if page > 1 && total > 0 {
		links.PreviousPage = pageLink(c, page-1, limit)
	}
	if page < totalPages {
		links.NextPage = pageLink(c, page+1, limit)
	}
	return pagedResponse{
		PaginationMeta: paginationMeta{
			CurrentPage:     page,
			CurrentPageSize: limit,
			TotalPages:      totalPages,
			TotalRecords:    total,
		},
		Links: links,
		Rows:  rows,
	}
}

func pageLink(c *gin.Context, page, limit int) string {
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return fmt.Sprintf("%s?%s", c.Request.URL.Path, q.Encode())
}
