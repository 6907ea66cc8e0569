package repository

import (
	"context"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

// UserTestRepository manages assessment sessions
type UserTestRepository interface {
	// Create inserts the session and fills in its generated ID
	Create(ctx context.Context, test *entity.UserTest) error
	MarkCompleted(ctx context.Context, testID uint) error
	GetByUUID(ctx context.Context, userID uint, uuid string) (*entity.UserTest, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]entity.UserTest, int64, error)
	SoftDelete(ctx context.Context, userID uint, uuid string) error
}

// AssessmentRepository stores scores and result snapshots
type AssessmentRepository interface {
	SaveScores(ctx context.Context, scores []entity.UserAssessmentScore) error
	SaveResponse(ctx context.Context, response *entity.UserResponse) error
	ResponseByTest(ctx context.Context, userTestID uint) (*entity.UserResponse, error)
	// ScoresByUser returns every score of a user's live tests with Dimension preloaded
	ScoresByUser(ctx context.Context, userID uint) ([]entity.UserAssessmentScore, error)
}

// Store groups the repositories bound to one transaction
type Store interface {
	References() ReferenceRepository
	UserTests() UserTestRepository
	Assessments() AssessmentRepository
}

// UnitOfWork runs fn inside a single transaction. If fn returns an error or
// panics, every write made through the Store is rolled back; otherwise the
// transaction is committed and the commit error, if any, is returned.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
