package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/handler/dto"
	"github.com/yourusername/assessment-api/internal/handler/helper"
	"github.com/yourusername/assessment-api/internal/middleware"
	"github.com/yourusername/assessment-api/internal/service/assessment"
)

// AssessmentScorer runs the scoring pipelines
type AssessmentScorer interface {
	ProcessInterest(ctx context.Context, responses map[string]float64, user *entity.User) (*assessment.InterestResult, error)
	ProcessPersonality(ctx context.Context, responses map[string]float64, user *entity.User) (*assessment.PersonalityResult, error)
	ProcessValue(ctx context.Context, responses map[string]float64, user *entity.User) (*assessment.ValueResult, error)
}

// ResultReader serves stored results
type ResultReader interface {
	ListTests(ctx context.Context, user *entity.User, page, pageSize int) ([]entity.UserTest, int64, error)
	GetResult(ctx context.Context, user *entity.User, testUUID string) (datatypes.JSON, error)
	DeleteTest(ctx context.Context, user *entity.User, testUUID string) error
	UserScores(ctx context.Context, userUUID string) (*entity.User, []entity.UserAssessmentScore, error)
}

// AssessmentHandler handles submissions and result history
type AssessmentHandler struct {
	scorer  AssessmentScorer
	results ResultReader
	logger  *zap.Logger
}

func NewAssessmentHandler(scorer AssessmentScorer, results ResultReader, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{scorer: scorer, results: results, logger: logger.Named("handler.assessment")}
}

// submit binds the request, runs process and writes its result
func submit[R any](h *AssessmentHandler, c *gin.Context, process func(context.Context, map[string]float64, *entity.User) (*R, error)) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "error_type": "token_missing"})
		return
	}

	var req dto.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := process(c.Request.Context(), req.Responses, user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitInterest scores a RIASEC questionnaire
func (h *AssessmentHandler) SubmitInterest(c *gin.Context) {
	submit(h, c, h.scorer.ProcessInterest)
}

// SubmitPersonality scores a personality questionnaire
func (h *AssessmentHandler) SubmitPersonality(c *gin.Context) {
	submit(h, c, h.scorer.ProcessPersonality)
}

// SubmitValue scores a work values questionnaire
func (h *AssessmentHandler) SubmitValue(c *gin.Context) {
	submit(h, c, h.scorer.ProcessValue)
}

// ListTests returns the caller's assessment history
func (h *AssessmentHandler) ListTests(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	tests, total, err := h.results.ListTests(c.Request.Context(), user, page, pageSize)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedTestsResponse{
		Items:    helper.ToTestSummaries(tests),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetResult returns the stored snapshot of one test
func (h *AssessmentHandler) GetResult(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	data, err := h.results.GetResult(c.Request.Context(), user, c.GetString("test_uuid"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// DeleteTest hides a test from the caller's history
func (h *AssessmentHandler) DeleteTest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.results.DeleteTest(c.Request.Context(), user, c.GetString("test_uuid")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
