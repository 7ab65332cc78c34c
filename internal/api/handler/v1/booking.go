package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danceinaction/booking-api/internal/api/handler/v1/request"
	"github.com/danceinaction/booking-api/internal/api/handler/v1/response"
	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/service"
)

type BookingService interface {
	Sessions(ctx context.Context) ([]domain.Session, error)
	SeatMap(ctx context.Context, sessionID string) ([]domain.SeatAvailability, error)
	Purchase(ctx context.Context, in service.PurchaseInput) (domain.Order, error)
}

type CouponValidator interface {
	Validate(ctx context.Context, code string) (service.CouponValidation, error)
}

type BookingHandler struct {
	svc     BookingService
	coupons CouponValidator
}

func NewBookingHandler(svc BookingService, coupons CouponValidator) *BookingHandler {
	return &BookingHandler{
		svc:     svc,
		coupons: coupons,
	}
}

// HandleListSessions godoc
// @Summary      List sessions
// @Tags         booking
// @Produce      json
// @Success      200      {object}   []domain.Session
// @Failure      500      {object}   response.Err
// @Router       /sessions [get]
func (h *BookingHandler) HandleListSessions(ctx *gin.Context) {
	sessions, err := h.svc.Sessions(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSessions -> h.svc.Sessions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

// HandleSeatMap godoc
// @Summary      Get the seat map of a session
// @Tags         booking
// @Produce      json
// @Param        sessionID   path       string  true "session ID"
// @Success      200      {object}   response.SeatMapResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sessions/{sessionID}/seatmap [get]
func (h *BookingHandler) HandleSeatMap(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	seats, err := h.svc.SeatMap(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSeatMap -> h.svc.SeatMap -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SeatMapResponse{
		SessionID: sessionID,
		Seats:     seats,
	})
}

// HandlePurchase godoc
// @Summary      Purchase seats in a session
// @Tags         booking
// @Produce      json
// @Param        sessionID   path       string  true "session ID"
// @Param        request   body      request.PurchaseRequest true "request body"
// @Success      201      {object}   response.PurchaseResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.SeatConflictResponse
// @Failure      500      {object}   response.Err
// @Router       /sessions/{sessionID}/purchase [post]
func (h *BookingHandler) HandlePurchase(ctx *gin.Context) {
	req := request.PurchaseRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	order, err := h.svc.Purchase(ctx.Request.Context(), service.PurchaseInput{
		SessionID:     ctx.Param("sessionID"),
		SeatIDs:       req.SeatIDs,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CouponCode:    req.CouponCode,
	})
	if err != nil {
		renderPurchaseErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, response.PurchaseResponse{
		Order:     order,
		Reference: order.Reference(),
	})
}

// renderPurchaseErr maps the booking state machine's failures onto
// HTTP. Seat conflicts carry the losing seat ids so the client can
// refresh exactly those.
func renderPurchaseErr(ctx *gin.Context, err error) {
	var conflict *service.SeatConflictError
	if errors.As(err, &conflict) {
		ctx.AbortWithStatusJSON(http.StatusConflict, response.SeatConflictResponse{
			Msg:   service.ErrSeatsUnavailable.Error(),
			Seats: conflict.SeatIDs,
		})

		return
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrUnknownSeat):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrSeatsUnavailable):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.Is(err, service.ErrCouponNotFound),
		errors.Is(err, service.ErrCouponInactive),
		errors.Is(err, service.ErrCouponExhausted),
		errors.Is(err, service.ErrCouponExpired):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		err = fmt.Errorf("v1.HandlePurchase -> h.svc.Purchase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleValidateCoupon godoc
// @Summary      Validate a coupon code
// @Tags         booking
// @Produce      json
// @Param        request   body      request.ValidateCouponRequest true "request body"
// @Success      200      {object}   service.CouponValidation
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /coupons/validate [post]
func (h *BookingHandler) HandleValidateCoupon(ctx *gin.Context) {
	req := request.ValidateCouponRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.coupons.Validate(ctx.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrCouponInactive),
			errors.Is(err, service.ErrCouponExhausted),
			errors.Is(err, service.ErrCouponExpired):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleValidateCoupon -> h.coupons.Validate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, result)
}
