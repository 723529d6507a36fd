// AngelaMos | 2026
// handler.go

package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/middleware"
)

const msgInvalidCredentials = "Invalid credentials"

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

// RegisterRoutes mounts the credential endpoints. limiter guards the
// unauthenticated endpoints and may be nil.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	limiter func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter)
		}
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/me", h.Me)
		r.Post("/logout", h.Logout)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if appErr := core.DecodeJSON(w, r, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	if appErr := core.Validate(h.validator, req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if appErr := core.DecodeJSON(w, r, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	if appErr := core.Validate(h.validator, req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.Unauthorized(w, msgInvalidCredentials)
			return
		}
		core.Error(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	if principal == nil {
		core.Unauthorized(w, "")
		return
	}

	user, err := h.service.GetUser(r.Context(), principal.UserID)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.OK(w, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	if principal == nil {
		core.Unauthorized(w, "")
		return
	}

	if err := h.service.Logout(r.Context(), principal.Token); err != nil {
		core.Error(w, r, err)
		return
	}

	core.Message(w, http.StatusOK, "Logged out")
}
