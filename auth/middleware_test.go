package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/models"
)

func guardedServer(t *testing.T, tokens *TokenService, loader UserLoader) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Error("guard passed the request through without a user in context")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "%d", user.UserID)
	})
	return JWTMiddleware(tokens, loader)(inner)
}

func loaderFor(users map[int]*models.User) UserLoader {
	return func(ctx context.Context, userID int) (*models.User, error) {
		user, ok := users[userID]
		if !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("User with user_id: %d does not exist.", userID), nil)
		}
		return user, nil
	}
}

func TestGuardAcceptsValidToken(t *testing.T) {
	tokens := testTokenService(time.Hour)
	handler := guardedServer(t, tokens, loaderFor(map[int]*models.User{
		42: {UserID: 42, Username: "jessica"},
	}))

	token, err := tokens.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/posts/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "42" {
		t.Errorf("handler saw user %q, want 42", rec.Body.String())
	}
}

func TestGuardRejectionsAreUniform(t *testing.T) {
	tokens := testTokenService(time.Hour)
	expired := testTokenService(-1 * time.Minute)
	foreign := NewTokenService(configWithSecret("another-secret"))

	validToken, _ := tokens.Issue(42)
	expiredToken, _ := expired.Issue(42)
	foreignToken, _ := foreign.Issue(42)

	handler := guardedServer(t, tokens, loaderFor(map[int]*models.User{
		42: {UserID: 42},
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong secret", "Bearer " + foreignToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/posts/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			var resp apperror.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			// One generic message for every failure mode.
			if resp.Detail != "Could not validate credentials." {
				t.Errorf("detail = %q, want the uniform message", resp.Detail)
			}
			if rec.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Errorf("missing WWW-Authenticate header")
			}
		})
	}

	// Sanity: the valid token still works after all those rejections.
	req := httptest.NewRequest(http.MethodGet, "/posts/", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", rec.Code)
	}
}

func TestGuardRejectsDeletedUser(t *testing.T) {
	tokens := testTokenService(time.Hour)
	// The loader knows no users: every token outlived its subject.
	handler := guardedServer(t, tokens, loaderFor(nil))

	token, _ := tokens.Issue(42)
	req := httptest.NewRequest(http.MethodGet, "/posts/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var resp apperror.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Detail != "Could not validate credentials." {
		t.Errorf("detail = %q, want the uniform message", resp.Detail)
	}
}

func TestGuardSurfacesLoaderFailures(t *testing.T) {
	tokens := testTokenService(time.Hour)
	loader := func(ctx context.Context, userID int) (*models.User, error) {
		return nil, apperror.NewDatabaseError("failed to get user", nil)
	}
	handler := guardedServer(t, tokens, loader)

	token, _ := tokens.Issue(42)
	req := httptest.NewRequest(http.MethodGet, "/posts/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// A store outage is not an authentication failure.
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
