// AngelaMos | 2026
// handler.go

package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/courses", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.OK(w, ToCourseResponseList(courses))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w)
		return
	}

	course, students, err := h.service.GetWithStudents(r.Context(), id)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.OK(w, ToCourseDetailResponse(course, students))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if appErr := core.DecodeJSON(w, r, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	if appErr := core.Validate(h.validator, req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	course, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.Created(w, ToCourseResponse(course))
}

// Update resolves the course before reading the body, so a missing id is a
// 404 whatever the payload.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w)
		return
	}

	course, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	var req UpdateCourseRequest
	if appErr := core.DecodeJSON(w, r, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	if appErr := core.Validate(h.validator, req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	course, err = h.service.Update(r.Context(), course, req)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.OK(w, ToCourseResponse(course))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.Error(w, r, err)
		return
	}

	core.Message(w, http.StatusOK, "Deleted")
}
