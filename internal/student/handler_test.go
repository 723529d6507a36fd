// AngelaMos | 2026
// handler_test.go

package student

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/middleware"
)

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

func newTestRouter(t *testing.T) (http.Handler, *memoryRepository) {
	t.Helper()

	repo := newMemoryRepository()
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(
		r,
		middleware.Authenticator(testTokens),
		middleware.RequireAdmin,
	)
	return r, repo
}

func do(
	t *testing.T,
	h http.Handler,
	method, path, body, token string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListStudents_Public(t *testing.T) {
	h, repo := newTestRouter(t)
	ada := repo.seed("Ada", "ada@example.com", "S-001")
	repo.courses = []EnrolledCourse{{OwnerID: ada.ID, ID: 4, Name: "Algebra", Credits: 3}}

	rec := do(t, h, http.MethodGet, "/students", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []StudentDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "S-001", list[0].StudentID)
	require.Len(t, list[0].Courses, 1)
	assert.Equal(t, "Algebra", list[0].Courses[0].Name)
}

func TestShowStudent_RequiresToken(t *testing.T) {
	h, repo := newTestRouter(t)
	repo.seed("Ada", "ada@example.com", "S-001")

	rec := do(t, h, http.MethodGet, "/students/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/students/1", "", "user-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"courses":[]`)

	rec = do(t, h, http.MethodGet, "/students/2", "", "user-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}

func TestCreateStudent(t *testing.T) {
	h, repo := newTestRouter(t)
	body := `{"name":"Ada","email":"ada@example.com","student_id":"S-001"}`

	rec := do(t, h, http.MethodPost, "/students", body, "user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodPost, "/students", body, "admin-token")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, repo.students, 1)

	rec = do(t, h, http.MethodPost, "/students", body, "admin-token")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"message": "The given data was invalid.",
		"errors": {
			"email": ["The email has already been taken."],
			"student_id": ["The student id has already been taken."]
		}
	}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/students",
		`{"name":"Bob","email":"not-an-email"}`, "admin-token")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "The email field must be a valid email address.")
	assert.Contains(t, rec.Body.String(), "The student id field is required.")
}

func TestUpdateStudent(t *testing.T) {
	h, repo := newTestRouter(t)
	repo.seed("Ada", "ada@example.com", "S-001")
	repo.seed("Bob", "bob@example.com", "S-002")

	rec := do(t, h, http.MethodPut, "/students/2", `{"email":"ada@example.com"}`, "admin-token")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPut, "/students/2",
		`{"email":"bob@example.com","name":"Robert"}`, "admin-token")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StudentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Robert", resp.Name)
	assert.Equal(t, "S-002", resp.StudentID)

	rec = do(t, h, http.MethodPut, "/students/7", `{"name":"Ghost"}`, "admin-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStudent(t *testing.T) {
	h, repo := newTestRouter(t)
	repo.seed("Ada", "ada@example.com", "S-001")

	rec := do(t, h, http.MethodDelete, "/students/1", "", "admin-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Deleted"}`, rec.Body.String())
	assert.Empty(t, repo.students)

	rec = do(t, h, http.MethodDelete, "/students/1", "", "admin-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStudent_RejectsBlankFields(t *testing.T) {
	h, repo := newTestRouter(t)
	ada := repo.seed("Ada", "ada@example.com", "S-001")

	tests := []struct {
		name string
		body string
		want []string
	}{
		{"blank name", `{"name":""}`, []string{"name"}},
		{"blank student id", `{"student_id":""}`, []string{"student_id"}},
		{"both blank", `{"name":"","student_id":""}`, []string{"name", "student_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPut, "/students/1", tt.body, "admin-token")
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp struct {
				Errors map[string][]string `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Errors, len(tt.want))
			for _, field := range tt.want {
				assert.Contains(t, resp.Errors, field)
			}
		})
	}

	stored, err := repo.GetByID(context.Background(), ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)
	assert.Equal(t, "S-001", stored.StudentID)
}
