package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-cinema-booking/internal/handler"
	"go-gin-cinema-booking/internal/middleware"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service/mocks"

	"github.com/gin-gonic/gin"
)

const (
	testSecret  = "test-secret"
	testBooking = "0b7e4a52-8d0c-4b8e-9d54-2f7b0c1e6a11"
)

var InvalidJSON = `{"invalid": json}`

type testRouter struct {
	router   *gin.Engine
	ledger   *mocks.MockSeatLedgerService
	bookings *mocks.MockBookingService
	payments *mocks.MockPaymentService
}

func setupRouter(t *testing.T) *testRouter {
	gin.SetMode(gin.TestMode)
	r := &testRouter{
		router:   gin.New(),
		ledger:   mocks.NewMockSeatLedgerService(t),
		bookings: mocks.NewMockBookingService(t),
		payments: mocks.NewMockPaymentService(t),
	}

	auth := middleware.JWTAuth(testSecret)
	handler.NewSeatHandler(r.ledger).RegisterRoutes(r.router, auth, nil)
	handler.NewBookingHandler(r.bookings).RegisterRoutes(r.router, auth)
	handler.NewPaymentHandler(r.payments, "X-Signature").RegisterRoutes(r.router)
	return r
}

func tokenFor(t *testing.T, userID int, role model.Role) string {
	t.Helper()
	token, err := middleware.CreateAccessToken(testSecret, "", userID, role, time.Hour)
	if err != nil {
		t.Fatalf("Failed to create token: %v", err)
	}
	return token
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

func (r *testRouter) do(method, url, token string, data interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if data != nil {
		req = httptest.NewRequest(method, url, createJSONRequest(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}
