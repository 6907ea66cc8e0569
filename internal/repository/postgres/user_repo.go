package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user; the password is hashed by the entity hook
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return dbError("create user", r.db.WithContext(ctx).Omit("Roles").Create(user).Error)
}

// GetByID returns a user by primary key
func (r *UserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, dbError("find user", err)
	}
	return &user, nil
}

// GetByUUID returns a live user with its active roles
func (r *UserRepo) GetByUUID(ctx context.Context, uuid string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("Roles", "roles.is_deleted = ?", false).
		Where("uuid = ? AND is_deleted = ?", uuid, false).
		First(&user).Error
	if err != nil {
		return nil, dbError("find user", err)
	}
	return &user, nil
}

// GetByEmail returns a user by email
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, dbError("find user", err)
	}
	return &user, nil
}

// RoleRepo implements repository.RoleRepository
type RoleRepo struct {
	db *gorm.DB
}

// NewRoleRepo creates a new role repository
func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := r.db.WithContext(ctx).Where("name = ? AND is_deleted = ?", name, false).First(&role).Error
	if err != nil {
		return nil, dbError("find role", err)
	}
	return &role, nil
}

func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	return dbError("create role", r.db.WithContext(ctx).Create(role).Error)
}

// AssignRole links a user to a role; an existing link is left untouched
func (r *RoleRepo) AssignRole(ctx context.Context, userRole *entity.UserRole) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "role_id"}},
			DoNothing: true,
		}).
		Create(userRole).Error
	return dbError("assign role", err)
}
