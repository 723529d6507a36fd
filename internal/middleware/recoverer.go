// AngelaMos | 2026
// recoverer.go

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(rec)
				}

				logger.Error("panic recovered",
					"request_id", core.RequestIDFromContext(r.Context()),
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
				core.InternalServerError(w, fmt.Errorf("panic: %v", rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
