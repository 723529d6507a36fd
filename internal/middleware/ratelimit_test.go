// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLocalRateLimiter(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{
		Name:  "auth",
		Limit: Limit(2, 2, time.Minute),
	})
	t.Cleanup(rl.Close)
	h := rl.Handler(http.HandlerFunc(okHandler))

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:5001").Code)

	rec := hit(h, "10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:5000").Code)
}

func TestRedisRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	rl := NewRateLimiter(rdb, RateLimitConfig{
		Name:  "global",
		Limit: Limit(1, 1, time.Minute),
	})
	t.Cleanup(rl.Close)
	h := rl.Handler(http.HandlerFunc(okHandler))

	require.Equal(t, http.StatusOK, hit(h, "10.0.0.3:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.3:2").Code)
}

func TestKeyByIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "ip:192.0.2.1", KeyByIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.9")
	assert.Equal(t, "ip:203.0.113.9", KeyByIP(req))
}
