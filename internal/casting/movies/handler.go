package movies

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/castwire/castwire/internal/auth"
	"github.com/castwire/castwire/internal/casting/shared"
	"github.com/castwire/castwire/internal/platform/httpx"
	internalShared "github.com/castwire/castwire/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
	auth    auth.Middleware
}

func NewHandler(logger *slog.Logger, service *Service, auth auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, auth: auth}
}

// MountRoutes registers the movie routes, each gated by its own permission.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(h.auth.Require(internalShared.PermGetMovies)).Get("/movies", h.List)
	r.With(h.auth.Require(internalShared.PermPostMovies)).Post("/movies", h.Create)
	r.With(h.auth.Require(internalShared.PermPatchMovies)).Patch("/movies/{id}", h.Update)
	r.With(h.auth.Require(internalShared.PermDeleteMovies)).Delete("/movies/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	formatted, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list movies failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, httpx.Envelope{
		"movies":       formatted,
		"total_movies": len(formatted),
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := shared.DecodeBody(r, &in, FieldError); err != nil {
		httpx.RespondError(w, err)
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.logger.Error("create movie failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, httpx.Envelope{"created": id})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}

	var in Input
	if err := shared.DecodeBody(r, &in, FieldError); err != nil {
		httpx.RespondError(w, err)
		return
	}

	formatted, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.logger.Error("update movie failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	if formatted == nil {
		httpx.OK(w, httpx.Envelope{"updated": "unchanged"})
		return
	}
	httpx.OK(w, httpx.Envelope{"updated": formatted})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete movie failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, httpx.Envelope{"deleted": id})
}
