package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// UserTestRepo implements repository.UserTestRepository
type UserTestRepo struct {
	db *gorm.DB
}

// NewUserTestRepo creates the assessment session repository
func NewUserTestRepo(db *gorm.DB) *UserTestRepo {
	return &UserTestRepo{db: db}
}

func (r *UserTestRepo) Create(ctx context.Context, test *entity.UserTest) error {
	return dbError("create user test", r.db.WithContext(ctx).Create(test).Error)
}

func (r *UserTestRepo) MarkCompleted(ctx context.Context, testID uint) error {
	result := r.db.WithContext(ctx).Model(&entity.UserTest{}).
		Where("id = ?", testID).
		Update("is_completed", true)
	if result.Error != nil {
		return dbError("complete user test", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserTestRepo) GetByUUID(ctx context.Context, userID uint, uuid string) (*entity.UserTest, error) {
	var test entity.UserTest
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND user_id = ? AND is_deleted = ?", uuid, userID, false).
		First(&test).Error
	if err != nil {
		return nil, dbError("find user test", err)
	}
	return &test, nil
}

// ListByUser returns one page of the user's live tests, newest first, plus the total count
func (r *UserTestRepo) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]entity.UserTest, int64, error) {
	var tests []entity.UserTest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.UserTest{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Session(&gorm.Session{}) // safe to reuse for count and page

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, dbError("count user tests", err)
	}

	err := query.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&tests).Error
	if err != nil {
		return nil, 0, dbError("list user tests", err)
	}
	return tests, total, nil
}

func (r *UserTestRepo) SoftDelete(ctx context.Context, userID uint, uuid string) error {
	result := r.db.WithContext(ctx).Model(&entity.UserTest{}).
		Where("uuid = ? AND user_id = ? AND is_deleted = ?", uuid, userID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return dbError("delete user test", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
