package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danceinaction/booking-api/internal/api/handler/v1/request"
	"github.com/danceinaction/booking-api/internal/api/handler/v1/response"
	"github.com/danceinaction/booking-api/internal/api/middleware"
	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/service"
)

type RegistrationService interface {
	Create(ctx context.Context, userID string, reg domain.Registration) (domain.Registration, error)
	Get(ctx context.Context, userID string, id uint) (domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Registration, error)
	Update(ctx context.Context, userID string, reg domain.Registration) (domain.Registration, error)
	Submit(ctx context.Context, userID string, id uint) (domain.Registration, error)
	ListAll(ctx context.Context) ([]domain.Registration, error)
	Delete(ctx context.Context, id uint) error
}

type AssignmentService interface {
	AssignSeats(ctx context.Context, registrationID uint, sessionID string, seatIDs []string) error
	UnassignSeats(ctx context.Context, registrationID uint, sessionID string) error
}

type RegistrationHandler struct {
	svc         RegistrationService
	assignments AssignmentService
}

func NewRegistrationHandler(svc RegistrationService, assignments AssignmentService) *RegistrationHandler {
	return &RegistrationHandler{
		svc:         svc,
		assignments: assignments,
	}
}

// HandleCreateRegistration godoc
// @Summary      Create a draft registration
// @Tags         registrations
// @Produce      json
// @Param        request   body      request.SaveRegistrationRequest true "request body"
// @Success      201      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /registrations [post]
func (h *RegistrationHandler) HandleCreateRegistration(ctx *gin.Context) {
	req := request.SaveRegistrationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reg, err := h.svc.Create(ctx.Request.Context(), middleware.UserID(ctx), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateRegistration -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// HandleListRegistrations godoc
// @Summary      List the caller's registrations
// @Tags         registrations
// @Produce      json
// @Success      200      {object}   []domain.Registration
// @Failure      500      {object}   response.Err
// @Router       /registrations [get]
func (h *RegistrationHandler) HandleListRegistrations(ctx *gin.Context) {
	regs, err := h.svc.ListByUser(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListRegistrations -> h.svc.ListByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// HandleGetRegistration godoc
// @Summary      Get one of the caller's registrations
// @Tags         registrations
// @Produce      json
// @Param        registrationID   path       int  true "registration ID"
// @Success      200      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /registrations/{registrationID} [get]
func (h *RegistrationHandler) HandleGetRegistration(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reg, err := h.svc.Get(ctx.Request.Context(), middleware.UserID(ctx), id)
	if err != nil {
		renderRegistrationErr(ctx, "v1.HandleGetRegistration", err)

		return
	}

	ctx.JSON(http.StatusOK, reg)
}

// HandleUpdateRegistration godoc
// @Summary      Replace a draft registration
// @Tags         registrations
// @Produce      json
// @Param        registrationID   path       int  true "registration ID"
// @Param        request   body      request.SaveRegistrationRequest true "request body"
// @Success      200      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /registrations/{registrationID} [put]
func (h *RegistrationHandler) HandleUpdateRegistration(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.SaveRegistrationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reg := req.ToDomain()
	reg.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), middleware.UserID(ctx), reg)
	if err != nil {
		renderRegistrationErr(ctx, "v1.HandleUpdateRegistration", err)

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleSubmitRegistration godoc
// @Summary      Submit a draft registration
// @Tags         registrations
// @Produce      json
// @Param        registrationID   path       int  true "registration ID"
// @Success      200      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /registrations/{registrationID}/submit [post]
func (h *RegistrationHandler) HandleSubmitRegistration(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reg, err := h.svc.Submit(ctx.Request.Context(), middleware.UserID(ctx), id)
	if err != nil {
		renderRegistrationErr(ctx, "v1.HandleSubmitRegistration", err)

		return
	}

	ctx.JSON(http.StatusOK, reg)
}

// HandleListAllRegistrations godoc
// @Summary      List every registration
// @Tags         admin
// @Produce      json
// @Success      200      {object}   []domain.Registration
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations [get]
func (h *RegistrationHandler) HandleListAllRegistrations(ctx *gin.Context) {
	regs, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllRegistrations -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// HandleDeleteRegistration godoc
// @Summary      Delete a registration and release its seats
// @Tags         admin
// @Produce      json
// @Param        registrationID   path       int  true "registration ID"
// @Param        request   body      request.ConfirmRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations/{registrationID} [delete]
func (h *RegistrationHandler) HandleDeleteRegistration(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.ConfirmRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRegistration -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "registration deleted"})
}

// HandleAssignSeats godoc
// @Summary      Assign seats to a registration group
// @Tags         admin
// @Produce      json
// @Param        registrationID   path       int  true "registration ID"
// @Param        request   body      request.AssignSeatsRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.SeatConflictResponse
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations/{registrationID}/assign [post]
func (h *RegistrationHandler) HandleAssignSeats(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.AssignSeatsRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.assignments.AssignSeats(ctx.Request.Context(), id, req.SessionID, req.SeatIDs); err != nil {
		var conflict *service.SeatConflictError
		switch {
		case errors.As(err, &conflict):
			ctx.AbortWithStatusJSON(http.StatusConflict, response.SeatConflictResponse{
				Msg:   service.ErrSeatsUnavailable.Error(),
				Seats: conflict.SeatIDs,
			})
		case errors.Is(err, service.ErrRegistrationNotFound),
			errors.Is(err, service.ErrSessionNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrUnknownSeat):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrSeatsUnavailable):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleAssignSeats -> h.assignments.AssignSeats -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "seats assigned"})
}

// HandleUnassignSeats godoc
// @Summary      Release every seat a registration holds in a session
// @Tags         admin
// @Produce      json
// @Param        registrationID   path       int  true "registration ID"
// @Param        request   body      request.UnassignSeatsRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations/{registrationID}/unassign [post]
func (h *RegistrationHandler) HandleUnassignSeats(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UnassignSeatsRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.assignments.UnassignSeats(ctx.Request.Context(), id, req.SessionID); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUnassignSeats -> h.assignments.UnassignSeats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "seats released"})
}

func renderRegistrationErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrRegistrationNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrNotRegistrationOwner):
		response.RenderErr(ctx, response.ErrForbidden(err))
	case errors.Is(err, service.ErrRegistrationSubmitted):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
