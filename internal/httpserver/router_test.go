package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopmate-api/internal/domain"
	custsvc "shopmate-api/internal/service/customer"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestRouterRejectsMissingDeps(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if _, err := buildRouter(logDiscard(), nil, Deps{}); err == nil {
		t.Fatalf("expected error for empty deps")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, testDeps())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	router := newTestRouter(t, testDeps())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customer", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"code":"AUT_01"`) {
		t.Fatalf("expected AUT_01, got %s", rec.Body.String())
	}
}

func TestAuthInvalidToken(t *testing.T) {
	deps := testDeps()
	deps.Customers = &stubCustomerService{lookupErr: custsvc.ErrInvalidToken}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set(authHeader, "Bearer bad-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"AUT_02"`) {
		t.Fatalf("expected AUT_02, got %s", rec.Body.String())
	}
}

func TestAuthInjectsCustomer(t *testing.T) {
	deps := testDeps()
	deps.Customers = &stubCustomerService{customer: &domain.Customer{ID: 5, Email: "me@example.com"}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set(authHeader, "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"me@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterReturnsBearerToken(t *testing.T) {
	deps := testDeps()
	deps.Customers = &stubCustomerService{auth: &custsvc.AuthResult{
		Customer:  &domain.Customer{ID: 1, Email: "new@example.com"},
		Token:     "jwt-token",
		ExpiresIn: 12 * time.Hour,
	}}
	router := newTestRouter(t, deps)

	body := `{"name":"New","email":"new@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"accessToken":"Bearer jwt-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	deps := testDeps()
	deps.Customers = &stubCustomerService{signupErr: domain.ErrAlreadyExists}
	router := newTestRouter(t, deps)

	body := `{"name":"New","email":"dup@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"USR_04"`) {
		t.Fatalf("expected USR_04, got %s", rec.Body.String())
	}
}

func TestLoginBadCredentials(t *testing.T) {
	deps := testDeps()
	deps.Customers = &stubCustomerService{loginErr: custsvc.ErrInvalidCredentials}
	router := newTestRouter(t, deps)

	body := `{"email":"a@b.test","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/customers/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"USR_01"`) {
		t.Fatalf("expected USR_01, got %s", rec.Body.String())
	}
}
