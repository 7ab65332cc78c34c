package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository"
	"github.com/danceinaction/booking-api/internal/service"
)

type stubBookingService struct {
	sessions []domain.Session
	seatMap  []domain.SeatAvailability
	order    domain.Order
	err      error
}

func (s *stubBookingService) Sessions(context.Context) ([]domain.Session, error) {
	return s.sessions, s.err
}

func (s *stubBookingService) SeatMap(context.Context, string) ([]domain.SeatAvailability, error) {
	return s.seatMap, s.err
}

func (s *stubBookingService) Purchase(context.Context, service.PurchaseInput) (domain.Order, error) {
	return s.order, s.err
}

type stubCouponValidator struct {
	result service.CouponValidation
	err    error
}

func (s *stubCouponValidator) Validate(context.Context, string) (service.CouponValidation, error) {
	return s.result, s.err
}

func newBookingRouter(svc BookingService, coupons CouponValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBookingHandler(svc, coupons)
	router.GET("/api/v1/sessions", h.HandleListSessions)
	router.GET("/api/v1/sessions/:sessionID/seatmap", h.HandleSeatMap)
	router.POST("/api/v1/sessions/:sessionID/purchase", h.HandlePurchase)
	router.POST("/api/v1/coupons/validate", h.HandleValidateCoupon)
	return router
}

func validPurchaseBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"seat_ids":       []string{"R1-1"},
		"customer_name":  "Ana García",
		"customer_email": "ana@example.com",
		"customer_phone": "600123456",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandlePurchase(t *testing.T) {
	order := domain.Order{ID: "a1b2c3d4-0000-0000-0000-000000000000", TotalAmount: 5, PaymentStatus: domain.PaymentPending}
	router := newBookingRouter(&stubBookingService{order: order}, &stubCouponValidator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/morning/purchase", validPurchaseBody(t))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var got struct {
		Order     domain.Order `json:"order"`
		Reference string       `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, order.ID, got.Order.ID)
	assert.Equal(t, "A1B2C3D4", got.Reference)
}

func TestHandlePurchase_InvalidBody(t *testing.T) {
	router := newBookingRouter(&stubBookingService{}, &stubCouponValidator{})

	body := bytes.NewBufferString(`{"seat_ids": []}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/morning/purchase", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandlePurchase_SeatConflictNamesSeats(t *testing.T) {
	svc := &stubBookingService{err: &repository.SeatConflictError{SeatIDs: []string{"R1-1"}}}
	router := newBookingRouter(svc, &stubCouponValidator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/morning/purchase", validPurchaseBody(t))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusConflict, resp.Code)

	var got struct {
		Msg   string   `json:"error"`
		Seats []string `json:"seats"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, []string{"R1-1"}, got.Seats)
}

func TestHandlePurchase_SessionNotFound(t *testing.T) {
	router := newBookingRouter(&stubBookingService{err: service.ErrSessionNotFound}, &stubCouponValidator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/evening/purchase", validPurchaseBody(t))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleSeatMap(t *testing.T) {
	svc := &stubBookingService{seatMap: []domain.SeatAvailability{
		{Seat: domain.Seat{ID: "R1-1"}, Status: domain.TicketAvailable, Price: domain.PublicPrice},
	}}
	router := newBookingRouter(svc, &stubCouponValidator{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/morning/seatmap", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got struct {
		SessionID string                    `json:"session_id"`
		Seats     []domain.SeatAvailability `json:"seats"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "morning", got.SessionID)
	require.Len(t, got.Seats, 1)
	assert.Equal(t, "R1-1", got.Seats[0].ID)
}

func TestHandleValidateCoupon(t *testing.T) {
	tests := []struct {
		name     string
		stub     *stubCouponValidator
		wantCode int
	}{
		{
			name:     "redeemable",
			stub:     &stubCouponValidator{result: service.CouponValidation{CouponID: 1, DiscountType: domain.DiscountFixed, DiscountValue: 5}},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown",
			stub:     &stubCouponValidator{err: service.ErrCouponNotFound},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "exhausted",
			stub:     &stubCouponValidator{err: service.ErrCouponExhausted},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBookingRouter(&stubBookingService{}, tt.stub)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/coupons/validate", bytes.NewBufferString(`{"code":"DANCE10"}`))
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
