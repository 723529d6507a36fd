// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/middleware"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func serve(t *testing.T, h *Handler, adminOnly func(http.Handler) http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	h.RegisterRoutes(r, passthrough, adminOnly)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func newDatabase(t *testing.T) (*core.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &core.Database{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func expectCounts(mock sqlmock.Sqlmock, counts map[string]int64) {
	for _, table := range countedTables {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + table).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(counts[table]))
	}
}

func TestSystemStats(t *testing.T) {
	db, mock := newDatabase(t)
	expectCounts(mock, map[string]int64{"students": 12, "courses": 4, "enrollments": 30})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	h := NewHandler(HandlerConfig{
		Counter:    db,
		DBStats:    db.Stats,
		DBPing:     func(context.Context) error { return nil },
		RedisStats: rdb.PoolStats,
		RedisPing:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	rec := serve(t, h, passthrough, "/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Entities["students"])
	assert.Equal(t, int64(30), resp.Entities["enrollments"])
	assert.Equal(t, int64(0), resp.Entities["products"])
	assert.True(t, resp.Database.Healthy)
	assert.True(t, resp.Redis.Configured)
	assert.True(t, resp.Redis.Healthy)
	assert.NotNil(t, resp.Redis.Stats)
	assert.NotEmpty(t, resp.Runtime.GoVersion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSystemStats_WithoutRedis(t *testing.T) {
	db, mock := newDatabase(t)
	expectCounts(mock, nil)

	h := NewHandler(HandlerConfig{
		Counter: db,
		DBPing:  func(context.Context) error { return errors.New("down") },
	})

	rec := serve(t, h, passthrough, "/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Database.Healthy)
	assert.False(t, resp.Redis.Configured)
	assert.Nil(t, resp.Redis.Stats)
}

func TestSystemStats_CountFailure(t *testing.T) {
	db, mock := newDatabase(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("relation does not exist"))

	rec := serve(t, NewHandler(HandlerConfig{Counter: db}), passthrough, "/admin/stats/entities")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestStats_AdminOnly(t *testing.T) {
	gate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithPrincipal(r.Context(), &middleware.Principal{UserID: 2, Role: "user"})
			middleware.RequireAdmin(next).ServeHTTP(w, r.WithContext(ctx))
		})
	}

	rec := serve(t, NewHandler(HandlerConfig{}), gate, "/admin/stats/runtime")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
