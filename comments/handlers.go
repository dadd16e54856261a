package comments

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

// Handlers exposes the comment endpoints, all behind the JWT guard.
type Handlers struct {
	service  CommentService
	validate *validation.Validator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service CommentService, validate *validation.Validator) *Handlers {
	return &Handlers{service: service, validate: validate}
}

// RegisterRoutes mounts the comment routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListComments())
	r.Post("/", h.HandleCreateComment())
	r.Get("/{comment_id}", h.HandleGetComment())
	r.Put("/{comment_id}", h.HandleUpdateComment())
	r.Delete("/{comment_id}", h.HandleDeleteComment())
}

// HandleListComments godoc
// @Summary List Comments
// @Description Returns a page of comments with their author summaries.
// @Tags Comments
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Comment
// @Security BearerAuth
// @Router /comments/ [get]
func (h *Handlers) HandleListComments() http.HandlerFunc {
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

// HandleGetComment godoc
// @Summary Get Comment
// @Description Returns a single comment.
// @Tags Comments
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{comment_id} [get]
func (h *Handlers) HandleGetComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := pathCommentID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		comment, err := h.service.Get(r.Context(), commentID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, comment)
	}
}

// HandleCreateComment godoc
// @Summary Create Comment
// @Description Adds a comment to a post as the authenticated user.
// @Tags Comments
// @Accept json
// @Produce json
// @Param body body comments.CreateCommentRequest true "Comment details"
// @Success 201 {object} models.Comment
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 422 {object} apperror.ErrorResponse "Validation failure"
// @Security BearerAuth
// @Router /comments/ [post]
func (h *Handlers) HandleCreateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", nil))
			return
		}

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		comment, err := h.service.Create(r.Context(), user, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, comment)
	}
}

// HandleUpdateComment godoc
// @Summary Update Comment
// @Description Edits a comment's text. Owner only.
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Param body body comments.UpdateCommentRequest true "New comment text"
// @Success 200 {object} models.Comment
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Failure 422 {object} apperror.ErrorResponse "Validation failure"
// @Security BearerAuth
// @Router /comments/{comment_id} [put]
func (h *Handlers) HandleUpdateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", nil))
			return
		}

		commentID, err := pathCommentID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		comment, err := h.service.Update(r.Context(), user, commentID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, comment)
	}
}

// HandleDeleteComment godoc
// @Summary Delete Comment
// @Description Deletes a comment. Owner only.
// @Tags Comments
// @Param comment_id path int true "Comment ID"
// @Success 204 "Deleted"
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{comment_id} [delete]
func (h *Handlers) HandleDeleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", nil))
			return
		}

		commentID, err := pathCommentID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), user, commentID); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func pathCommentID(r *http.Request) (int, error) {
	commentID, err := strconv.Atoi(chi.URLParam(r, "comment_id"))
	if err != nil {
		return 0, apperror.NewValidationError("The `comment_id` must be an integer.", err)
	}
	return commentID, nil
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
