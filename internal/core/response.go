// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

type validationBody struct {
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}

// JSONError renders an AppError. Validation failures carry their field map,
// a 404 uses the message key, everything else uses the error key.
func JSONError(w http.ResponseWriter, appErr *AppError) {
	switch {
	case appErr.StatusCode == http.StatusUnprocessableEntity:
		fields := appErr.Fields
		if fields == nil {
			fields = FieldErrors{}
		}
		JSON(w, appErr.StatusCode, validationBody{
			Message: appErr.Message,
			Errors:  fields,
		})
	case appErr.StatusCode == http.StatusNotFound:
		JSON(w, appErr.StatusCode, messageBody{Message: appErr.Message})
	default:
		JSON(w, appErr.StatusCode, errorBody{Error: appErr.Message})
	}
}

func NotFound(w http.ResponseWriter) {
	JSONError(w, NotFoundError())
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	JSON(w, http.StatusInternalServerError, errorBody{Error: MsgServerError})
}

// Error maps an error from a service call onto a response. AppErrors are
// rendered as is, a bare ErrNotFound becomes a 404, anything else a 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := IsAppError(err); ok {
		if appErr.StatusCode >= http.StatusInternalServerError {
			SetSpanError(r.Context(), err)
			slog.ErrorContext(r.Context(), "request failed", "error", err)
		}
		JSONError(w, appErr)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(w)
	case errors.Is(err, ErrForbidden):
		Forbidden(w, "")
	case errors.Is(err, ErrUnauthorized):
		Unauthorized(w, "")
	default:
		SetSpanError(r.Context(), err)
		slog.ErrorContext(
			r.Context(),
			"internal server error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
		)
		JSON(w, http.StatusInternalServerError, errorBody{Error: MsgServerError})
	}
}
