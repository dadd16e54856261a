package likes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/auth"
	"github.com/user/socialmedia-go/validation"
)

// Handlers exposes the like toggle endpoint, behind the JWT guard.
type Handlers struct {
	service  LikeService
	validate *validation.Validator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service LikeService, validate *validation.Validator) *Handlers {
	return &Handlers{service: service, validate: validate}
}

// RegisterRoutes mounts the like routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/", h.HandleToggleLike())
}

// HandleToggleLike godoc
// @Summary Toggle Like
// @Description Adds (liked=true) or removes (liked=false) the caller's like on a post.
// @Tags Likes
// @Accept json
// @Produce json
// @Param body body likes.LikeRequest true "Toggle request"
// @Success 201 {object} likes.DetailResponse
// @Failure 403 {object} apperror.ErrorResponse "Cannot like own post"
// @Failure 404 {object} apperror.ErrorResponse "Post or like not found"
// @Failure 409 {object} apperror.ErrorResponse "Already liked"
// @Failure 422 {object} apperror.ErrorResponse "Validation failure"
// @Security BearerAuth
// @Router /likes/ [post]
func (h *Handlers) HandleToggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", nil))
			return
		}

		var req LikeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		detail, err := h.service.Toggle(r.Context(), user, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, DetailResponse{Detail: detail})
	}
}
