// AngelaMos | 2026
// pgerrors.go

package core

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapDBError translates driver errors into the package sentinels while
// keeping the PostgreSQL error in the chain for ConstraintName.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicateKey, pgErr)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKey, pgErr)
		}
	}

	return err
}

// ConstraintName returns the violated constraint of a PostgreSQL error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
