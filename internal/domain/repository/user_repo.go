package repository

import (
	"context"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

// UserRepository defines user account access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	// GetByUUID loads a non-deleted user together with its roles
	GetByUUID(ctx context.Context, uuid string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// RoleRepository defines role access used by the startup bootstrap
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	Create(ctx context.Context, role *entity.Role) error
	AssignRole(ctx context.Context, userRole *entity.UserRole) error
}
