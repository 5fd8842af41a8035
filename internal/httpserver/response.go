package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the error payload. The taxonomy is part of the API
// contract and clients key off it, so codes are never repurposed.
const (
	codeAuthMissing      = "AUT_01" // authorization header is empty
	codeAuthInvalid      = "AUT_02" // token cannot be validated
	codeBadCredentials   = "USR_01" // email or password is wrong
	codePaymentFailed    = "USR_02" // payment gateway rejected the charge
	codeFieldRequired    = "USR_03" // a required field is missing or malformed
	codeEmailExists      = "USR_04" // email already registered
	codeCustomerNotFound = "USR_05"
	codeProductNotFound  = "PRD_01"
	codeDeptNotFound     = "DEP_02"
	codeCategoryNotFound = "CAT_01"
	codeAttrNotFound     = "ATT_01"
	codeCartNotFound     = "CRT_01"
	codeItemNotFound     = "ITM_01"
	codeOrderNotFound    = "ORD_01"
	codeOrderAlreadyPaid = "ORD_02"
	codeShippingNotFound = "SHP_01"
	codeTaxNotFound      = "TAX_01"
	codeInternal         = "SRV_01"
)

type errorPayload struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func failJSON(c *gin.Context, status int, code, field, message string) {
	c.AbortWithStatusJSON(status, errorPayload{Error: apiError{
		Status:  status,
		Code:    code,
		Field:   field,
		Message: message,
	}})
}

func failInternal(c *gin.Context, logger *log.Logger, err error) {
	logger.Printf("http: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	failJSON(c, http.StatusInternalServerError, codeInternal, "", "internal server error")
}

func failBadRequest(c *gin.Context, field string) {
	failJSON(c, http.StatusBadRequest, codeFieldRequired, field, "The field(s) are/is required.")
}

func isValidation(err error) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve)
}

func failValidation(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		failBadRequest(c, ve.Field)
		return
	}
	failBadRequest(c, "")
}
