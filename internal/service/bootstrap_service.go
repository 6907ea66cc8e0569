package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/config"
	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/domain/repository"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// BootstrapService seeds roles and the first administrator. Every step is
// idempotent so it runs on each start.
type BootstrapService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	logger   *zap.Logger
}

func NewBootstrapService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, logger *zap.Logger) *BootstrapService {
	return &BootstrapService{userRepo: userRepo, roleRepo: roleRepo, logger: logger.Named("bootstrap")}
}

// Run ensures roles ADMIN and USER exist and, when credentials are
// configured, that an admin account holds both.
func (s *BootstrapService) Run(ctx context.Context, cfg config.BootstrapConfig) error {
	roles := make(map[string]*entity.Role, 2)
	for _, name := range []string{entity.RoleAdmin, entity.RoleUser} {
		role, err := s.ensureRole(ctx, name)
		if err != nil {
			return err
		}
		roles[name] = role
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		s.logger.Info("admin credentials not configured, skipping admin bootstrap")
		return nil
	}

	admin, err := s.userRepo.GetByEmail(ctx, cfg.AdminEmail)
	if errors.Is(err, apperrors.ErrNotFound) {
		username := cfg.AdminUsername
		if username == "" {
			username = "admin"
		}
		admin = &entity.User{
			UUID:       uuid.NewString(),
			Username:   username,
			Email:      cfg.AdminEmail,
			Password:   cfg.AdminPassword,
			IsVerified: true,
			IsActive:   true,
		}
		if err := s.userRepo.Create(ctx, admin); err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		s.logger.Info("admin user created", zap.String("email", cfg.AdminEmail))
	} else if err != nil {
		return fmt.Errorf("find admin user: %w", err)
	}

	for _, name := range []string{entity.RoleAdmin, entity.RoleUser} {
		link := &entity.UserRole{UUID: uuid.NewString(), UserID: admin.ID, RoleID: roles[name].ID}
		if err := s.roleRepo.AssignRole(ctx, link); err != nil {
			return fmt.Errorf("assign role %s: %w", name, err)
		}
	}
	return nil
}

func (s *BootstrapService) ensureRole(ctx context.Context, name string) (*entity.Role, error) {
	role, err := s.roleRepo.GetByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("find role %s: %w", name, err)
	}

	role = &entity.Role{UUID: uuid.NewString(), Name: name}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role %s: %w", name, err)
	}
	s.logger.Info("role created", zap.String("role", name))
	return role, nil
}
