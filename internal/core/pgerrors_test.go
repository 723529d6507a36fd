// AngelaMos | 2026
// pgerrors_test.go

package core

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapDBError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}
	foreign := &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_student_id_fkey"}
	other := errors.New("connection refused")

	assert.NoError(t, MapDBError(nil))
	assert.ErrorIs(t, MapDBError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, MapDBError(fmt.Errorf("insert: %w", unique)), ErrDuplicateKey)
	assert.ErrorIs(t, MapDBError(foreign), ErrForeignKey)
	assert.Equal(t, other, MapDBError(other))

	assert.Equal(t, "students_email_key", ConstraintName(fmt.Errorf("x: %w", unique)))
	assert.Equal(t, "students_email_key", ConstraintName(MapDBError(unique)))
	assert.Empty(t, ConstraintName(other))
}
