package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/handler/dto"
	"github.com/yourusername/assessment-api/internal/handler/helper"
	"github.com/yourusername/assessment-api/internal/middleware"
)

// FeedbackManager is the feedback use-case surface
type FeedbackManager interface {
	Create(ctx context.Context, user *entity.User, assessmentTypeUUID, text string) (*entity.UserFeedback, error)
	ListPromoted(ctx context.Context) ([]entity.UserFeedback, error)
	ListAll(ctx context.Context) ([]entity.UserFeedback, error)
	Promote(ctx context.Context, feedbackUUID string) error
}

type FeedbackHandler struct {
	feedbacks FeedbackManager
	logger    *zap.Logger
}

func NewFeedbackHandler(feedbacks FeedbackManager, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks, logger: logger.Named("handler.feedback")}
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	feedback, err := h.feedbacks.Create(c.Request.Context(), user, req.AssessmentTypeUUID, req.Feedback)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, helper.ToFeedbackResponse(*feedback))
}

// ListPromoted is public
func (h *FeedbackHandler) ListPromoted(c *gin.Context) {
	feedbacks, err := h.feedbacks.ListPromoted(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, helper.ToFeedbackResponses(feedbacks))
}

func (h *FeedbackHandler) ListAll(c *gin.Context) {
	feedbacks, err := h.feedbacks.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, helper.ToFeedbackResponses(feedbacks))
}

func (h *FeedbackHandler) Promote(c *gin.Context) {
	if err := h.feedbacks.Promote(c.Request.Context(), c.GetString("feedback_uuid")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
