package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  *AppError
		want int
	}{
		{"auth", NewAuthError("Could not validate credentials.", nil), http.StatusUnauthorized},
		{"unauthorized", NewUnauthorizedError("Not authorized to perform request action.", nil), http.StatusForbidden},
		{"not found", NewNotFoundError("Like does not exist.", nil), http.StatusNotFound},
		{"conflict", NewConflictError("already liked", nil), http.StatusConflict},
		{"validation", NewValidationError("bad input", nil), http.StatusUnprocessableEntity},
		{"bad request", NewBadRequestError("bad body", nil), http.StatusBadRequest},
		{"database", NewDatabaseError("query failed", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"unknown", NewAppError(UnknownError, "??", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.want {
			t.Errorf("%s: StatusCode() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestToResponseHidesUnderlyingError(t *testing.T) {
	underlying := errors.New("pq: secret internals")
	appErr := NewDatabaseError("failed to fetch post", underlying)

	resp := appErr.ToResponse()
	if resp.Detail != "failed to fetch post" {
		t.Errorf("Detail = %q, want user-facing message only", resp.Detail)
	}
}

func TestUnwrapChain(t *testing.T) {
	underlying := errors.New("no rows")
	appErr := NewNotFoundError("Post with post_id: 1 does not exist.", underlying)

	if !errors.Is(appErr, underlying) {
		t.Error("errors.Is should find the wrapped error")
	}

	wrapped := fmt.Errorf("handler: %w", appErr)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsConflictError(wrapped) {
		t.Error("IsConflictError should not match a NotFound error")
	}
}

func TestFromError(t *testing.T) {
	if _, ok := FromError(errors.New("plain")); ok {
		t.Error("plain errors must not convert")
	}
	appErr, ok := FromError(NewConflictError("dup", nil))
	if !ok || appErr.Type != ConflictError {
		t.Errorf("FromError = (%v, %v), want conflict AppError", appErr, ok)
	}
	if _, ok := FromError(nil); ok {
		t.Error("nil must not convert")
	}
}
