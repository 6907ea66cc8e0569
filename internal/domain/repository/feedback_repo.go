package repository

import (
	"context"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

// FeedbackRepository manages user feedback. List methods preload the author.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.UserFeedback) error
	GetByUUID(ctx context.Context, uuid string) (*entity.UserFeedback, error)
	ListPromoted(ctx context.Context) ([]entity.UserFeedback, error)
	ListAll(ctx context.Context) ([]entity.UserFeedback, error)
	Promote(ctx context.Context, id uint) error
}
