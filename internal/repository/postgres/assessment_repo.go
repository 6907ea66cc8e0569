package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

// AssessmentRepo implements repository.AssessmentRepository
type AssessmentRepo struct {
	db *gorm.DB
}

// NewAssessmentRepo creates the score and snapshot repository
func NewAssessmentRepo(db *gorm.DB) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

// SaveScores inserts all rows in one statement
func (r *AssessmentRepo) SaveScores(ctx context.Context, scores []entity.UserAssessmentScore) error {
	if len(scores) == 0 {
		return nil
	}
	return dbError("save assessment scores", r.db.WithContext(ctx).Create(&scores).Error)
}

func (r *AssessmentRepo) SaveResponse(ctx context.Context, response *entity.UserResponse) error {
	return dbError("save user response", r.db.WithContext(ctx).Create(response).Error)
}

func (r *AssessmentRepo) ResponseByTest(ctx context.Context, userTestID uint) (*entity.UserResponse, error) {
	var response entity.UserResponse
	err := r.db.WithContext(ctx).Where("user_test_id = ?", userTestID).First(&response).Error
	if err != nil {
		return nil, dbError("find user response", err)
	}
	return &response, nil
}

func (r *AssessmentRepo) ScoresByUser(ctx context.Context, userID uint) ([]entity.UserAssessmentScore, error) {
	var scores []entity.UserAssessmentScore
	err := r.db.WithContext(ctx).
		Preload("Dimension").
		Preload("UserTest").
		Preload("AssessmentType").
		Joins("JOIN user_tests ON user_tests.id = user_assessment_scores.user_test_id").
		Where("user_assessment_scores.user_id = ? AND user_tests.is_deleted = ?", userID, false).
		Order("user_assessment_scores.created_at, user_assessment_scores.id").
		Find(&scores).Error
	return scores, dbError("list assessment scores", err)
}
