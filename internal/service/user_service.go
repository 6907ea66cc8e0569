package service

import (
	"context"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/domain/repository"
)

// UserService looks up accounts
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByUUID returns a live user with roles. A malformed UUID is an InvalidInputError.
func (s *UserService) GetByUUID(ctx context.Context, userUUID string) (*entity.User, error) {
	id, err := parseUUID("user_uuid", userUUID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByUUID(ctx, id)
}
