package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// authHeader is where clients carry their bearer token. The nonstandard
// header name is part of the public API contract.
const authHeader = "USER-KEY"

const (
	ctxCustomerID    = "customer_id"
	ctxCustomerEmail = "customer_email"
)

// requireAuth resolves the USER-KEY bearer token to a customer and injects
// customer_id into the request context. Downstream handlers trust that id.
func requireAuth(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(authHeader))
		if raw == "" {
			failJSON(c, http.StatusUnauthorized, codeAuthMissing, authHeader, "Authorization code is empty.")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if token == "" {
			failJSON(c, http.StatusUnauthorized, codeAuthInvalid, authHeader, "Access Unauthorized.")
			return
		}
		cust, err := customers.LookupByToken(c.Request.Context(), token)
		if err != nil {
			failJSON(c, http.StatusUnauthorized, codeAuthInvalid, authHeader, "Access Unauthorized.")
			return
		}
		c.Set(ctxCustomerID, cust.ID)
		c.Set(ctxCustomerEmail, cust.Email)
		c.Next()
	}
}

// customerID pulls the authenticated customer out of the request context.
func customerID(c *gin.Context) int {
	return c.GetInt(ctxCustomerID)
}
