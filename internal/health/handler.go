// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

const checkTimeout = 5 * time.Second

type Checker interface {
	Ping(ctx context.Context) error
}

// CheckerFunc adapts a ping function to Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type namedChecker struct {
	name    string
	checker Checker
}

type Handler struct {
	checks   []namedChecker
	shutdown atomic.Bool
}

// NewHandler reports readiness from the database ping. Further
// dependencies are added with AddCheck.
func NewHandler(db Checker) *Handler {
	h := &Handler{}
	h.AddCheck("database", db)
	return h
}

// AddCheck registers a dependency checked by /readyz. It must be called
// before the handler serves requests.
func (h *Handler) AddCheck(name string, checker Checker) {
	h.checks = append(h.checks, namedChecker{name: name, checker: checker})
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	if h.shutdown.Load() {
		writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	writeStatus(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	checks := h.runChecks(ctx)

	status := "ok"
	statusCode := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	writeStatus(w, statusCode, ReadinessResponse{
		Status: status,
		Checks: checks,
	})
}

func (h *Handler) runChecks(ctx context.Context) []HealthCheck {
	results := make([]HealthCheck, len(h.checks))

	var wg sync.WaitGroup
	for i, nc := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = checkOne(ctx, nc)
		}()
	}
	wg.Wait()

	return results
}

func checkOne(ctx context.Context, nc namedChecker) HealthCheck {
	check := HealthCheck{
		Name:    nc.name,
		Healthy: true,
	}

	if nc.checker == nil {
		check.Healthy = false
		check.Message = nc.name + " checker not configured"
		return check
	}

	start := time.Now()
	err := nc.checker.Ping(ctx)
	check.Latency = time.Since(start).String()

	if err != nil {
		check.Healthy = false
		check.Message = "ping failed"
	}

	return check
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func writeStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	core.JSON(w, status, data)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
