// AngelaMos | 2026
// handler_test.go

package course

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/middleware"
)

var courseRowColumns = []string{
	"id", "name", "description", "credits", "created_at", "updated_at",
}

type tokenTable map[string]*middleware.Principal

func (t tokenTable) Authenticate(_ context.Context, token string) (*middleware.Principal, error) {
	if p, ok := t[token]; ok {
		return p, nil
	}
	return nil, core.ErrTokenInvalid
}

var testTokens = tokenTable{
	"admin-token": {UserID: 1, Role: middleware.RoleAdmin},
	"user-token":  {UserID: 2, Role: "user"},
}

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(sqlx.NewDb(db, "sqlmock"))
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(
		r,
		middleware.Authenticator(testTokens),
		middleware.RequireAdmin,
	)
	return r, mock
}

func do(
	t *testing.T,
	h http.Handler,
	method, path, body, token string,
) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestGetCourse_Missing(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM courses WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	rec, body := do(t, h, http.MethodGet, "/courses/999", "", "user-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"message": "Not Found"}, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourse_IncludesStudents(t *testing.T) {
	h, mock := newTestRouter(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM courses WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(courseRowColumns).
			AddRow(3, "Algebra", nil, 4, now, now))
	mock.ExpectQuery(`FROM enrollments e`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "student_id", "created_at", "updated_at",
			"enrollment_id", "enrolled_at",
		}).AddRow(8, "Ada", "ada@example.com", "S-001", now, now, 11, now))

	rec, body := do(t, h, http.MethodGet, "/courses/3", "", "user-token")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Algebra", body["name"])
	assert.InDelta(t, 4, body["credits"], 0)
	students, _ := body["students"].([]any)
	require.Len(t, students, 1)
	first, _ := students[0].(map[string]any)
	assert.Equal(t, "S-001", first["student_id"])
	assert.InDelta(t, 11, first["enrollment_id"], 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCourses(t *testing.T) {
	h, mock := newTestRouter(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM courses ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(courseRowColumns).
			AddRow(1, "Algebra", "Intro", 3, now, now).
			AddRow(2, "Biology", nil, 2, now, now))

	rec, _ := do(t, h, http.MethodGet, "/courses", "", "user-token")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []CourseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Biology", list[1].Name)
	assert.Nil(t, list[1].Description)
}

func TestCreateCourse(t *testing.T) {
	t.Run("credits must be at least one", func(t *testing.T) {
		h, mock := newTestRouter(t)

		rec, body := do(t, h, http.MethodPost, "/courses",
			`{"name":"Algebra","credits":0}`, "admin-token")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		errs, _ := body["errors"].(map[string]any)
		assert.Equal(t, []any{"The credits field must be at least 1."}, errs["credits"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("credits must be an integer", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rec, body := do(t, h, http.MethodPost, "/courses",
			`{"name":"Algebra","credits":2.5}`, "admin-token")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		errs, _ := body["errors"].(map[string]any)
		assert.Equal(t, []any{"The credits field must be an integer."}, errs["credits"])
	})

	t.Run("forbidden for regular users", func(t *testing.T) {
		h, mock := newTestRouter(t)

		rec, _ := do(t, h, http.MethodPost, "/courses",
			`{"name":"Algebra","credits":3}`, "user-token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("created", func(t *testing.T) {
		h, mock := newTestRouter(t)
		now := time.Now().UTC()

		mock.ExpectQuery(`INSERT INTO courses`).
			WithArgs("Algebra", nil, int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(1, now, now))

		rec, body := do(t, h, http.MethodPost, "/courses",
			`{"name":"Algebra","credits":3}`, "admin-token")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.InDelta(t, 1, body["id"], 0)
		assert.NotContains(t, body, "students")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateCourse(t *testing.T) {
	t.Run("missing course wins over invalid body", func(t *testing.T) {
		h, mock := newTestRouter(t)

		mock.ExpectQuery(`FROM courses WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)

		rec, body := do(t, h, http.MethodPut, "/courses/5", `{"credits":0}`, "admin-token")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", body["message"])
	})

	t.Run("returns the updated course", func(t *testing.T) {
		h, mock := newTestRouter(t)
		now := time.Now().UTC()

		mock.ExpectQuery(`FROM courses WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(courseRowColumns).
				AddRow(5, "Algebra", "Intro", 3, now, now))
		mock.ExpectQuery(`UPDATE courses`).
			WithArgs(int64(5), "Algebra", nil, int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		rec, body := do(t, h, http.MethodPut, "/courses/5",
			`{"credits":5,"description":null}`, "admin-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 5, body["credits"], 0)
		assert.Nil(t, body["description"])
		assert.Equal(t, "Algebra", body["name"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteCourse(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectExec(`DELETE FROM courses`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec, body := do(t, h, http.MethodDelete, "/courses/2", "", "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deleted", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCourse_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{
			name:  "blank name",
			body:  `{"name":""}`,
			field: "name",
			want:  "The name field must be at least 1 characters.",
		},
		{
			name:  "null credits",
			body:  `{"credits":null}`,
			field: "credits",
			want:  "The credits field must be an integer.",
		},
		{
			name:  "credits beyond integer column",
			body:  `{"credits":2147483648}`,
			field: "credits",
			want:  "The credits field must not be greater than 2147483647.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestRouter(t)
			now := time.Now().UTC()

			mock.ExpectQuery(`FROM courses WHERE id = \$1`).
				WithArgs(int64(5)).
				WillReturnRows(sqlmock.NewRows(courseRowColumns).
					AddRow(5, "Algebra", "Intro", 3, now, now))

			rec, body := do(t, h, http.MethodPut, "/courses/5", tt.body, "admin-token")

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			errs, _ := body["errors"].(map[string]any)
			assert.Equal(t, []any{tt.want}, errs[tt.field])
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateCourse_CreditsOutOfRange(t *testing.T) {
	h, mock := newTestRouter(t)

	rec, body := do(t, h, http.MethodPost, "/courses",
		`{"name":"Algebra","credits":2147483648}`, "admin-token")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs, _ := body["errors"].(map[string]any)
	assert.Equal(t,
		[]any{"The credits field must not be greater than 2147483647."},
		errs["credits"],
	)
	assert.NoError(t, mock.ExpectationsWereMet())
}
