package auth

import (
	"context"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/models"
)

// contextKey is a private type for context keys, preventing collisions
// with keys from other packages.
type contextKey string

const userContextKey contextKey = "auth_user"

// NewContextWithUser returns a child context carrying the authenticated
// user. The guard is the only writer; handlers read it back through
// UserFromContext, so the identity always travels explicitly with the
// request rather than through ambient state.
func NewContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the authenticated user set by the guard.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// RequireOwner is the ownership policy for mutating operations: a write
// on a post or comment is permitted iff the resource owner is the
// requester. Callers must resolve the resource first so that a missing
// id yields NotFound, never Forbidden.
func RequireOwner(ownerID, userID int) error {
	if ownerID != userID {
		return apperror.NewUnauthorizedError("Not authorized to perform request action.", nil)
	}
	return nil
}
