package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/auth"
	"github.com/user/socialmedia-go/validation"
)

// Handlers exposes the user endpoints. Both are public: registration by
// necessity, the profile lookup by design.
type Handlers struct {
	service  UserService
	validate *validation.Validator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service UserService, validate *validation.Validator) *Handlers {
	return &Handlers{service: service, validate: validate}
}

// HandleCreateUser godoc
// @Summary User Registration
// @Description Registers a new user. The password is hashed and never echoed back.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body users.CreateUserRequest true "User registration details"
// @Success 201 {object} models.User "User created"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - malformed body"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - username or email already exists"
// @Failure 422 {object} apperror.ErrorResponse "Unprocessable Entity - validation failure"
// @Router /users/ [post]
func (h *Handlers) HandleCreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		user, err := h.service.Create(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, user)
	}
}

// HandleGetUser godoc
// @Summary Get User
// @Description Returns a single user's public representation.
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 422 {object} apperror.ErrorResponse "Invalid user id"
// @Router /users/{user_id} [get]
func (h *Handlers) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(chi.URLParam(r, "user_id"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("The `user_id` must be an integer.", err))
			return
		}

		user, err := h.service.GetByID(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, user)
	}
}
