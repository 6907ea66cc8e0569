package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// dbError maps gorm/pgx failures onto the application taxonomy.
// Missing rows become ErrNotFound; SQLSTATE class 23 (integrity constraint
// violation) becomes a PersistenceError that also matches ErrConflict.
func dbError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return &apperrors.PersistenceError{Op: op, Err: err, Constraint: true}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &apperrors.PersistenceError{Op: op, Err: err, Constraint: true}
	}

	return &apperrors.PersistenceError{Op: op, Err: err}
}
