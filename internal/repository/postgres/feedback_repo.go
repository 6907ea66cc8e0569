package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// FeedbackRepo implements repository.FeedbackRepository
type FeedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo creates a new feedback repository
func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *entity.UserFeedback) error {
	return dbError("create feedback", r.db.WithContext(ctx).Omit("User").Create(feedback).Error)
}

func (r *FeedbackRepo) GetByUUID(ctx context.Context, uuid string) (*entity.UserFeedback, error) {
	var feedback entity.UserFeedback
	err := r.db.WithContext(ctx).Where("uuid = ? AND is_deleted = ?", uuid, false).First(&feedback).Error
	if err != nil {
		return nil, dbError("find feedback", err)
	}
	return &feedback, nil
}

func (r *FeedbackRepo) ListPromoted(ctx context.Context) ([]entity.UserFeedback, error) {
	var feedbacks []entity.UserFeedback
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_promoted = ? AND is_deleted = ?", true, false).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, dbError("list promoted feedback", err)
}

func (r *FeedbackRepo) ListAll(ctx context.Context) ([]entity.UserFeedback, error) {
	var feedbacks []entity.UserFeedback
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, dbError("list feedback", err)
}

func (r *FeedbackRepo) Promote(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&entity.UserFeedback{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_promoted", true)
	if result.Error != nil {
		return dbError("promote feedback", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
