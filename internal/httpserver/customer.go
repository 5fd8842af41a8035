package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopmate-api/internal/domain"
	custrepo "shopmate-api/internal/repository/customer"
	custsvc "shopmate-api/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type customerHandler struct {
	svc    CustomerService
	logger *log.Logger
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Customer  *domain.Customer `json:"customer"`
	Token     string           `json:"accessToken"`
	ExpiresIn string           `json:"expires_in"`
}

func toAuthResponse(res *custsvc.AuthResult) authResponse {
	return authResponse{
		Customer:  res.Customer,
		Token:     "Bearer " + res.Token,
		ExpiresIn: res.ExpiresIn.String(),
	}
}

func (h *customerHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	res, err := h.svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			failJSON(c, http.StatusConflict, codeEmailExists, "email", "The email already exists.")
		case isValidation(err):
			failValidation(c, err)
		default:
			failInternal(c, h.logger, err)
		}
		return
	}
	c.JSON(http.StatusCreated, toAuthResponse(res))
}

func (h *customerHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	res, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, custsvc.ErrInvalidCredentials) {
			failJSON(c, http.StatusBadRequest, codeBadCredentials, "email, password", "Email or Password is invalid.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toAuthResponse(res))
}

func (h *customerHandler) profile(c *gin.Context) {
	cust, err := h.svc.Get(c.Request.Context(), customerID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			failJSON(c, http.StatusNotFound, codeCustomerNotFound, "customer_id", "The customer doesn't exist.")
			return
		}
		failInternal(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

type profileUpdateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	DayPhone string `json:"day_phone"`
	EvePhone string `json:"eve_phone"`
	MobPhone string `json:"mob_phone"`
}

func (h *customerHandler) updateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	cust, err := h.svc.UpdateProfile(c.Request.Context(), customerID(c), custrepo.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		DayPhone: req.DayPhone,
		EvePhone: req.EvePhone,
		MobPhone: req.MobPhone,
	})
	if err != nil {
		h.updateError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

type addressUpdateRequest struct {
	Address1         string `json:"address_1"`
	Address2         string `json:"address_2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	ShippingRegionID int    `json:"shipping_region_id"`
}

func (h *customerHandler) updateAddress(c *gin.Context) {
	var req addressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	cust, err := h.svc.UpdateAddress(c.Request.Context(), customerID(c), custrepo.AddressUpdate{
		Address1:         req.Address1,
		Address2:         req.Address2,
		City:             req.City,
		Region:           req.Region,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		ShippingRegionID: req.ShippingRegionID,
	})
	if err != nil {
		h.updateError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

type creditCardRequest struct {
	CreditCard string `json:"credit_card"`
}

func (h *customerHandler) updateCreditCard(c *gin.Context) {
	var req creditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "")
		return
	}
	cust, err := h.svc.UpdateCreditCard(c.Request.Context(), customerID(c), req.CreditCard)
	if err != nil {
		h.updateError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *customerHandler) updateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		failJSON(c, http.StatusNotFound, codeCustomerNotFound, "customer_id", "The customer doesn't exist.")
	case errors.Is(err, domain.ErrAlreadyExists):
		failJSON(c, http.StatusConflict, codeEmailExists, "email", "The email already exists.")
	case isValidation(err):
		failValidation(c, err)
	default:
		failInternal(c, h.logger, err)
	}
}
