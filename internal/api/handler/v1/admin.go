package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danceinaction/booking-api/internal/api/handler/v1/request"
	"github.com/danceinaction/booking-api/internal/api/handler/v1/response"
	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/service"
)

type AdminAuthService interface {
	Login(pin string) (string, error)
}

type AdminBookingService interface {
	ConfirmPayment(ctx context.Context, orderID string) error
	CancelOrder(ctx context.Context, orderID string) error
	CleanupExpiredOrders(ctx context.Context) (int, error)
	Order(ctx context.Context, orderID string) (domain.Order, error)
	Orders(ctx context.Context) ([]domain.Order, error)
	Accounting(ctx context.Context) (service.Accounting, error)
	ResetApplicationData(ctx context.Context) error
}

type SeedingService interface {
	Seed(ctx context.Context) (int, error)
}

type CouponAdminService interface {
	Create(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type AdminHandler struct {
	auth    AdminAuthService
	booking AdminBookingService
	seeder  SeedingService
	coupons CouponAdminService
}

func NewAdminHandler(auth AdminAuthService, booking AdminBookingService, seeder SeedingService, coupons CouponAdminService) *AdminHandler {
	return &AdminHandler{
		auth:    auth,
		booking: booking,
		seeder:  seeder,
		coupons: coupons,
	}
}

// HandleLogin godoc
// @Summary      Exchange the organizer PIN for an admin session token
// @Tags         admin
// @Produce      json
// @Param        request   body      request.AdminLoginRequest true "request body"
// @Success      200      {object}   response.AdminLoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	req := request.AdminLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	token, err := h.auth.Login(req.PIN)
	if err != nil {
		if errors.Is(err, service.ErrWrongPIN) {
			response.RenderErr(ctx, response.ErrUnauthorized(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.auth.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.AdminLoginResponse{Token: token})
}

// HandleSeed godoc
// @Summary      Seed sessions, seats and tickets
// @Tags         admin
// @Produce      json
// @Success      200      {object}   response.SeedResponse
// @Failure      500      {object}   response.Err
// @Router       /admin/seed [post]
func (h *AdminHandler) HandleSeed(ctx *gin.Context) {
	seats, err := h.seeder.Seed(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSeed -> h.seeder.Seed -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SeedResponse{SeatsSeeded: seats})
}

// HandleListOrders godoc
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Success      200      {object}   []domain.Order
// @Failure      500      {object}   response.Err
// @Router       /admin/orders [get]
func (h *AdminHandler) HandleListOrders(ctx *gin.Context) {
	orders, err := h.booking.Orders(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrders -> h.booking.Orders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleGetOrder godoc
// @Summary      Get one order
// @Tags         admin
// @Produce      json
// @Param        orderID   path       string  true "order ID"
// @Success      200      {object}   domain.Order
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/orders/{orderID} [get]
func (h *AdminHandler) HandleGetOrder(ctx *gin.Context) {
	order, err := h.booking.Order(ctx.Request.Context(), ctx.Param("orderID"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetOrder -> h.booking.Order -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, order)
}

// HandleConfirmOrder godoc
// @Summary      Confirm payment receipt for a pending order
// @Tags         admin
// @Produce      json
// @Param        orderID   path       string  true "order ID"
// @Success      200      {object}   domain.Order
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/orders/{orderID}/confirm [post]
func (h *AdminHandler) HandleConfirmOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	if err := h.booking.ConfirmPayment(ctx.Request.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrOrderNotPending):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleConfirmOrder -> h.booking.ConfirmPayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	order, err := h.booking.Order(ctx.Request.Context(), orderID)
	if err != nil {
		err = fmt.Errorf("v1.HandleConfirmOrder -> h.booking.Order -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, order)
}

// HandleCancelOrder godoc
// @Summary      Cancel an order and release its seats
// @Tags         admin
// @Produce      json
// @Param        orderID   path       string  true "order ID"
// @Success      200      {object}   domain.Order
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/orders/{orderID}/cancel [post]
func (h *AdminHandler) HandleCancelOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	if err := h.booking.CancelOrder(ctx.Request.Context(), orderID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleCancelOrder -> h.booking.CancelOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	order, err := h.booking.Order(ctx.Request.Context(), orderID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCancelOrder -> h.booking.Order -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, order)
}

// HandleCleanupOrders godoc
// @Summary      Expire stale pending orders and release their seats
// @Tags         admin
// @Produce      json
// @Success      200      {object}   response.CleanupResponse
// @Failure      500      {object}   response.Err
// @Router       /admin/orders/cleanup [post]
func (h *AdminHandler) HandleCleanupOrders(ctx *gin.Context) {
	count, err := h.booking.CleanupExpiredOrders(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleCleanupOrders -> h.booking.CleanupExpiredOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CleanupResponse{ExpiredOrders: count})
}

// HandleAccounting godoc
// @Summary      Session fill and revenue summary
// @Tags         admin
// @Produce      json
// @Success      200      {object}   service.Accounting
// @Failure      500      {object}   response.Err
// @Router       /admin/accounting [get]
func (h *AdminHandler) HandleAccounting(ctx *gin.Context) {
	accounting, err := h.booking.Accounting(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleAccounting -> h.booking.Accounting -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, accounting)
}

// HandleReset godoc
// @Summary      Wipe orders and registrations, release all seats
// @Tags         admin
// @Produce      json
// @Param        request   body      request.ConfirmRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/reset [post]
func (h *AdminHandler) HandleReset(ctx *gin.Context) {
	req := request.ConfirmRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.booking.ResetApplicationData(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleReset -> h.booking.ResetApplicationData -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "application data reset"})
}

// HandleCreateCoupon godoc
// @Summary      Create a coupon
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateCouponRequest true "request body"
// @Success      201      {object}   domain.Coupon
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/coupons [post]
func (h *AdminHandler) HandleCreateCoupon(ctx *gin.Context) {
	req := request.CreateCouponRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	coupon, err := h.coupons.Create(ctx.Request.Context(), domain.Coupon{
		Code:          req.Code,
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MaxUses:       req.MaxUses,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrCouponCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateCoupon -> h.coupons.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, coupon)
}

// HandleListCoupons godoc
// @Summary      List coupons
// @Tags         admin
// @Produce      json
// @Success      200      {object}   []domain.Coupon
// @Failure      500      {object}   response.Err
// @Router       /admin/coupons [get]
func (h *AdminHandler) HandleListCoupons(ctx *gin.Context) {
	coupons, err := h.coupons.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCoupons -> h.coupons.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, coupons)
}

// HandleSetCouponActive godoc
// @Summary      Activate or deactivate a coupon
// @Tags         admin
// @Produce      json
// @Param        couponID   path       int  true "coupon ID"
// @Param        request   body      request.SetCouponActiveRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/coupons/{couponID} [patch]
func (h *AdminHandler) HandleSetCouponActive(ctx *gin.Context) {
	couponID, err := parseUintParam(ctx, "couponID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.SetCouponActiveRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.coupons.SetActive(ctx.Request.Context(), couponID, *req.IsActive); err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSetCouponActive -> h.coupons.SetActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "coupon updated"})
}

// HandleDeleteCoupon godoc
// @Summary      Delete a coupon
// @Tags         admin
// @Produce      json
// @Param        couponID   path       int  true "coupon ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/coupons/{couponID} [delete]
func (h *AdminHandler) HandleDeleteCoupon(ctx *gin.Context) {
	couponID, err := parseUintParam(ctx, "couponID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.coupons.Delete(ctx.Request.Context(), couponID); err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteCoupon -> h.coupons.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "coupon deleted"})
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}
	return uint(id), nil
}
