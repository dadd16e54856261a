package posts

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/auth"
	"github.com/user/socialmedia-go/validation"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
)

// Handlers exposes the post endpoints. All of them sit behind the JWT
// guard, so auth.UserFromContext is always populated here.
type Handlers struct {
	service  PostService
	validate *validation.Validator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service PostService, validate *validation.Validator) *Handlers {
	return &Handlers{service: service, validate: validate}
}

// RegisterRoutes mounts the post routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListPosts())
	r.Post("/", h.HandleCreatePost())
	r.Get("/{post_id}", h.HandleGetPost())
	r.Put("/{post_id}", h.HandleUpdatePost())
	r.Delete("/{post_id}", h.HandleDeletePost())
}

// HandleListPosts godoc
// @Summary List Posts
// @Description Returns a page of posts with their like and comment counts.
// @Tags Posts
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} posts.PostWithCounts
// @Security BearerAuth
// @Router /posts/ [get]
func (h *Handlers) HandleListPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := queryInt(r, "offset", defaultOffset)
		limit := queryInt(r, "limit", defaultLimit)

		result, err := h.service.List(r.Context(), offset, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, result)
	}
}

// HandleGetPost godoc
// @Summary Get Post
// @Description Returns a single post with its like and comment counts.
// @Tags Posts
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 200 {object} posts.PostWithCounts
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{post_id} [get]
func (h *Handlers) HandleGetPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathPostID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		item, err := h.service.Get(r.Context(), postID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, item)
	}
}

// HandleCreatePost godoc
// @Summary Create Post
// @Description Creates a post owned by the authenticated user.
// @Tags Posts
// @Accept json
// @Produce json
// @Param body body posts.CreatePostRequest true "Post details"
// @Success 201 {object} models.Post
// @Failure 422 {object} apperror.ErrorResponse "Validation failure"
// @Security BearerAuth
// @Router /posts/ [post]
func (h *Handlers) HandleCreatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", nil))
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		post, err := h.service.Create(r.Context(), user, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, post)
	}
}

// HandleUpdatePost godoc
// @Summary Update Post
// @Description Rewrites a post's title, content and category. Owner only.
// @Tags Posts
// @Accept json
// @Produce json
// @Param post_id path int true "Post ID"
// @Param body body posts.UpdatePostRequest true "New post content"
// @Success 200 {object} models.Post
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 422 {object} apperror.ErrorResponse "Validation failure"
// @Security BearerAuth
// @Router /posts/{post_id} [put]
func (h *Handlers) HandleUpdatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", nil))
			return
		}

		postID, err := pathPostID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		post, err := h.service.Update(r.Context(), user, postID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, post)
	}
}

// HandleDeletePost godoc
// @Summary Delete Post
// @Description Deletes a post and everything attached to it. Owner only.
// @Tags Posts
// @Param post_id path int true "Post ID"
// @Success 204 "Deleted"
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{post_id} [delete]
func (h *Handlers) HandleDeletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", nil))
			return
		}

		postID, err := pathPostID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), user, postID); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func pathPostID(r *http.Request) (int, error) {
	postID, err := strconv.Atoi(chi.URLParam(r, "post_id"))
	if err != nil {
		return 0, apperror.NewValidationError("The `post_id` must be an integer.", err)
	}
	return postID, nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
