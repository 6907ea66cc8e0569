package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/domain/repository"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

const maxPageSize = 100

// ResultService serves a user's assessment history. Snapshots never change
// after they are written, so they are cached until their test is deleted.
type ResultService struct {
	testRepo       repository.UserTestRepository
	assessmentRepo repository.AssessmentRepository
	userRepo       repository.UserRepository
	cacheRepo      repository.CacheRepository
	ttl            time.Duration
	logger         *zap.Logger
}

// NewResultService creates a new result service
func NewResultService(
	testRepo repository.UserTestRepository,
	assessmentRepo repository.AssessmentRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *ResultService {
	return &ResultService{
		testRepo:       testRepo,
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		cacheRepo:      cacheRepo,
		ttl:            ttl,
		logger:         logger.Named("results"),
	}
}

// ListTests returns one page of the user's tests, newest first
func (s *ResultService) ListTests(ctx context.Context, user *entity.User, page, pageSize int) ([]entity.UserTest, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return s.testRepo.ListByUser(ctx, user.ID, pageSize, (page-1)*pageSize)
}

// GetResult returns the stored result snapshot of one of the user's tests
func (s *ResultService) GetResult(ctx context.Context, user *entity.User, testUUID string) (datatypes.JSON, error) {
	id, err := parseUUID("test_uuid", testUUID)
	if err != nil {
		return nil, err
	}

	key := resultCacheKey(user.ID, id)
	cached, err := s.cacheRepo.Get(ctx, key)
	switch {
	case err == nil:
		return datatypes.JSON(cached), nil
	case !errors.Is(err, apperrors.ErrNotFound):
		s.logger.Warn("result cache read failed", zap.String("key", key), zap.Error(err))
	}

	test, err := s.testRepo.GetByUUID(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	response, err := s.assessmentRepo.ResponseByTest(ctx, test.ID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, key, string(response.ResponseData), s.ttl); err != nil {
		s.logger.Warn("result cache write failed", zap.String("key", key), zap.Error(err))
	}
	return response.ResponseData, nil
}

// DeleteTest soft-deletes a test and drops its cached snapshot
func (s *ResultService) DeleteTest(ctx context.Context, user *entity.User, testUUID string) error {
	id, err := parseUUID("test_uuid", testUUID)
	if err != nil {
		return err
	}
	if err := s.testRepo.SoftDelete(ctx, user.ID, id); err != nil {
		return err
	}
	if err := s.cacheRepo.Delete(ctx, resultCacheKey(user.ID, id)); err != nil {
		s.logger.Warn("result cache invalidation failed", zap.String("test_uuid", id), zap.Error(err))
	}
	s.logger.Info("test deleted", zap.Uint("user_id", user.ID), zap.String("test_uuid", id))
	return nil
}

// UserScores loads a user and every score of their live tests, for export
func (s *ResultService) UserScores(ctx context.Context, userUUID string) (*entity.User, []entity.UserAssessmentScore, error) {
	id, err := parseUUID("user_uuid", userUUID)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.userRepo.GetByUUID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	scores, err := s.assessmentRepo.ScoresByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, scores, nil
}
