package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yourusername/assessment-api/internal/domain/repository"
)

// txStore binds the scoring repositories to one transaction
type txStore struct {
	references  *ReferenceRepo
	userTests   *UserTestRepo
	assessments *AssessmentRepo
}

func newTxStore(tx *gorm.DB) *txStore {
	return &txStore{
		references:  NewReferenceRepo(tx),
		userTests:   NewUserTestRepo(tx),
		assessments: NewAssessmentRepo(tx),
	}
}

func (s *txStore) References() repository.ReferenceRepository   { return s.references }
func (s *txStore) UserTests() repository.UserTestRepository     { return s.userTests }
func (s *txStore) Assessments() repository.AssessmentRepository { return s.assessments }

// UnitOfWork implements repository.UnitOfWork over a gorm transaction
type UnitOfWork struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUnitOfWork creates a transaction runner
func NewUnitOfWork(db *gorm.DB, logger *zap.Logger) *UnitOfWork {
	return &UnitOfWork{db: db, logger: logger}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// A panic inside fn rolls back and is re-raised.
func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, store repository.Store) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("failed to start transaction", zap.Error(tx.Error))
		return dbError("begin transaction", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			u.logger.Error("panic recovered inside transaction, rolled back", zap.Any("panic", r))
			panic(r)
		}
	}()

	if err := fn(ctx, newTxStore(tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			u.logger.Warn("rollback failed", zap.Error(rbErr), zap.NamedError("cause", err))
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return dbError("commit transaction", err)
	}
	return nil
}
