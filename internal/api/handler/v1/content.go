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

type ContentService interface {
	ListJudges(ctx context.Context) ([]domain.Judge, error)
	SaveJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	DeleteJudge(ctx context.Context, id uint) error
	ListFAQs(ctx context.Context) ([]domain.FAQ, error)
	SaveFAQ(ctx context.Context, faq domain.FAQ) (domain.FAQ, error)
	DeleteFAQ(ctx context.Context, id uint) error
	ListSettings(ctx context.Context) ([]domain.AppSetting, error)
	SaveSetting(ctx context.Context, setting domain.AppSetting) error
}

// ContentHandler serves the public site content (jury, FAQ, feature
// switches) and its admin CRUD.
type ContentHandler struct {
	svc ContentService
}

func NewContentHandler(svc ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// HandleListJudges godoc
// @Summary      List jury members
// @Tags         content
// @Produce      json
// @Success      200      {object}   []domain.Judge
// @Failure      500      {object}   response.Err
// @Router       /judges [get]
func (h *ContentHandler) HandleListJudges(ctx *gin.Context) {
	judges, err := h.svc.ListJudges(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListJudges -> h.svc.ListJudges -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, judges)
}

// HandleSaveJudge godoc
// @Summary      Create or update a jury member
// @Tags         admin
// @Produce      json
// @Param        request   body      request.SaveJudgeRequest true "request body"
// @Success      200      {object}   domain.Judge
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/judges [post]
func (h *ContentHandler) HandleSaveJudge(ctx *gin.Context) {
	req := request.SaveJudgeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	judge := domain.Judge{
		Name:     req.Name,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Position: req.Position,
	}
	if raw := ctx.Param("judgeID"); raw != "" {
		id, err := parseUintParam(ctx, "judgeID")
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		judge.ID = id
	}

	saved, err := h.svc.SaveJudge(ctx.Request.Context(), judge)
	if err != nil {
		err = fmt.Errorf("v1.HandleSaveJudge -> h.svc.SaveJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// HandleDeleteJudge godoc
// @Summary      Delete a jury member
// @Tags         admin
// @Produce      json
// @Param        judgeID   path       int  true "judge ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/judges/{judgeID} [delete]
func (h *ContentHandler) HandleDeleteJudge(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "judgeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteJudge(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrJudgeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteJudge -> h.svc.DeleteJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "judge deleted"})
}

// HandleListFAQs godoc
// @Summary      List FAQ entries
// @Tags         content
// @Produce      json
// @Success      200      {object}   []domain.FAQ
// @Failure      500      {object}   response.Err
// @Router       /faqs [get]
func (h *ContentHandler) HandleListFAQs(ctx *gin.Context) {
	faqs, err := h.svc.ListFAQs(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListFAQs -> h.svc.ListFAQs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, faqs)
}

// HandleSaveFAQ godoc
// @Summary      Create or update an FAQ entry
// @Tags         admin
// @Produce      json
// @Param        request   body      request.SaveFAQRequest true "request body"
// @Success      200      {object}   domain.FAQ
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/faqs [post]
func (h *ContentHandler) HandleSaveFAQ(ctx *gin.Context) {
	req := request.SaveFAQRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	faq := domain.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
	}
	if raw := ctx.Param("faqID"); raw != "" {
		id, err := parseUintParam(ctx, "faqID")
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		faq.ID = id
	}

	saved, err := h.svc.SaveFAQ(ctx.Request.Context(), faq)
	if err != nil {
		err = fmt.Errorf("v1.HandleSaveFAQ -> h.svc.SaveFAQ -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// HandleDeleteFAQ godoc
// @Summary      Delete an FAQ entry
// @Tags         admin
// @Produce      json
// @Param        faqID   path       int  true "FAQ ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/faqs/{faqID} [delete]
func (h *ContentHandler) HandleDeleteFAQ(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "faqID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteFAQ(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFAQNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteFAQ -> h.svc.DeleteFAQ -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "faq deleted"})
}

// HandleListSettings godoc
// @Summary      List application settings
// @Tags         content
// @Produce      json
// @Success      200      {object}   []domain.AppSetting
// @Failure      500      {object}   response.Err
// @Router       /settings [get]
func (h *ContentHandler) HandleListSettings(ctx *gin.Context) {
	settings, err := h.svc.ListSettings(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSettings -> h.svc.ListSettings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleSaveSetting godoc
// @Summary      Upsert an application setting
// @Tags         admin
// @Produce      json
// @Param        request   body      request.SaveSettingRequest true "request body"
// @Success      200      {object}   domain.AppSetting
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/settings [put]
func (h *ContentHandler) HandleSaveSetting(ctx *gin.Context) {
	req := request.SaveSettingRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	setting := domain.AppSetting{Key: req.Key, Value: req.Value}
	if err := h.svc.SaveSetting(ctx.Request.Context(), setting); err != nil {
		err = fmt.Errorf("v1.HandleSaveSetting -> h.svc.SaveSetting -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, setting)
}
