package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopmate-api/internal/domain"
	paysvc "shopmate-api/internal/service/payment"

	"github.com/shopspring/decimal"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(authHeader, "Bearer good-token")
	return req
}

func paymentDeps(payments *stubPaymentService) Deps {
	deps := testDeps()
	deps.Customers = &stubCustomerService{customer: &domain.Customer{ID: 3, Email: "a@b.test"}}
	deps.Payments = payments
	return deps
}

func TestChargeRequiresAuth(t *testing.T) {
	payments := &stubPaymentService{}
	router := newTestRouter(t, paymentDeps(payments))

	req := httptest.NewRequest(http.MethodPost, "/stripe/charge", strings.NewReader(`{"order_id":7}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if payments.calls != 0 {
		t.Fatalf("settle must not run unauthenticated")
	}
}

func TestChargeRequiresToken(t *testing.T) {
	payments := &stubPaymentService{}
	router := newTestRouter(t, paymentDeps(payments))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/stripe/charge", `{"order_id":7}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"field":"payment_token"`) {
		t.Fatalf("expected payment_token field error, got %s", rec.Body.String())
	}
	if payments.calls != 0 {
		t.Fatalf("settle must not run without a token")
	}
}

func TestChargeSuccess(t *testing.T) {
	payments := &stubPaymentService{result: &paysvc.Result{
		OrderID:     7,
		ChargeID:    "ch-1",
		Status:      "settled",
		AmountMinor: 2550,
		Total:       decimal.RequireFromString("25.50"),
	}}
	router := newTestRouter(t, paymentDeps(payments))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/stripe/charge", `{"order_id":7,"payment_token":"tok"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"charge_id":"ch-1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestChargeGatewayFailure(t *testing.T) {
	payments := &stubPaymentService{err: &domain.GatewayError{Step: "attach-source", Err: http.ErrBodyNotAllowed}}
	router := newTestRouter(t, paymentDeps(payments))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/stripe/charge", `{"order_id":7,"payment_token":"tok"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"USR_02"`) {
		t.Fatalf("expected USR_02, got %s", rec.Body.String())
	}
}

func TestChargeAlreadyPaid(t *testing.T) {
	payments := &stubPaymentService{err: domain.ErrOrderAlreadyPaid}
	router := newTestRouter(t, paymentDeps(payments))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/stripe/charge", `{"order_id":7,"payment_token":"tok"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"ORD_02"`) {
		t.Fatalf("expected ORD_02, got %s", rec.Body.String())
	}
}

func TestChargeUnknownOrder(t *testing.T) {
	payments := &stubPaymentService{err: domain.ErrNotFound}
	router := newTestRouter(t, paymentDeps(payments))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/stripe/charge", `{"order_id":404,"payment_token":"tok"}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"ORD_01"`) {
		t.Fatalf("expected ORD_01, got %s", rec.Body.String())
	}
}
