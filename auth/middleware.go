package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/models"
)

// UserLoader resolves a verified subject id to the current User row.
// The guard depends on this narrow function type rather than a concrete
// service so it can be exercised without a database.
type UserLoader func(ctx context.Context, userID int) (*models.User, error)

// JWTMiddleware returns the authorization guard applied to every route
// except registration, login and the public user lookup. It extracts
// the bearer token, verifies it, loads the subject's User row and
// stores the identity in the request context for downstream handlers.
//
// Every failure mode (missing header, malformed header, bad signature,
// expired token, missing claim, a subject that no longer exists)
// produces the same 401 response, so the endpoint cannot be used as an
// oracle for why a credential was rejected.
func JWTMiddleware(tokens *TokenService, loadUser UserLoader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthenticated(w, r, nil)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				writeUnauthenticated(w, r, nil)
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				writeUnauthenticated(w, r, err)
				return
			}

			user, err := loadUser(r.Context(), userID)
			if err != nil {
				if apperror.IsNotFound(err) {
					// Token outlived its subject; treat as unauthenticated.
					writeUnauthenticated(w, r, err)
					return
				}
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	WriteError(w, r, apperror.NewAuthError("Could not validate credentials.", err))
}
