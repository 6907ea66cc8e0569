package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/domain/repository"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

const maxFeedbackLength = 2000

// FeedbackService collects user feedback and curates the promoted list
type FeedbackService struct {
	feedbackRepo  repository.FeedbackRepository
	referenceRepo repository.ReferenceRepository
	cacheRepo     repository.CacheRepository
	ttl           time.Duration
	logger        *zap.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	referenceRepo repository.ReferenceRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo:  feedbackRepo,
		referenceRepo: referenceRepo,
		cacheRepo:     cacheRepo,
		ttl:           ttl,
		logger:        logger.Named("feedback"),
	}
}

// Create stores feedback about the assessment type identified by assessmentTypeUUID
func (s *FeedbackService) Create(ctx context.Context, user *entity.User, assessmentTypeUUID, text string) (*entity.UserFeedback, error) {
	typeID, err := parseUUID("assessment_type_uuid", assessmentTypeUUID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &apperrors.InvalidInputError{Field: "feedback", Reason: "must not be empty"}
	}
	if len([]rune(text)) > maxFeedbackLength {
		return nil, &apperrors.InvalidInputError{Field: "feedback", Reason: "is too long"}
	}

	at, err := s.referenceRepo.AssessmentTypeByUUID(ctx, typeID)
	if err != nil {
		return nil, err
	}

	feedback := &entity.UserFeedback{
		UUID:             uuid.NewString(),
		UserID:           user.ID,
		AssessmentTypeID: at.ID,
		Feedback:         text,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	feedback.User = user
	return feedback, nil
}

// ListPromoted returns the public feedback list, served from cache when possible
func (s *FeedbackService) ListPromoted(ctx context.Context) ([]entity.UserFeedback, error) {
	var cached []entity.UserFeedback
	err := s.cacheRepo.GetJSON(ctx, promotedFeedbackKey, &cached)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		s.logger.Warn("promoted feedback cache read failed", zap.Error(err))
	}

	feedbacks, err := s.feedbackRepo.ListPromoted(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cacheRepo.SetJSON(ctx, promotedFeedbackKey, feedbacks, s.ttl); err != nil {
		s.logger.Warn("promoted feedback cache write failed", zap.Error(err))
	}
	return feedbacks, nil
}

func (s *FeedbackService) ListAll(ctx context.Context) ([]entity.UserFeedback, error) {
	return s.feedbackRepo.ListAll(ctx)
}

// Promote marks feedback as public and invalidates the cached list
func (s *FeedbackService) Promote(ctx context.Context, feedbackUUID string) error {
	id, err := parseUUID("feedback_uuid", feedbackUUID)
	if err != nil {
		return err
	}
	feedback, err := s.feedbackRepo.GetByUUID(ctx, id)
	if err != nil {
		return err
	}
	if feedback.IsPromoted {
		return nil
	}
	if err := s.feedbackRepo.Promote(ctx, feedback.ID); err != nil {
		return err
	}
	if err := s.cacheRepo.Delete(ctx, promotedFeedbackKey); err != nil {
		s.logger.Warn("promoted feedback cache invalidation failed", zap.Error(err))
	}
	s.logger.Info("feedback promoted", zap.String("feedback_uuid", id))
	return nil
}
