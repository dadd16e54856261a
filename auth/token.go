// Package auth is responsible for authentication and authorization:
// token issuance and verification, the bearer-token guard applied to
// protected routes, password hashing, and the ownership policy used by
// mutating operations.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/socialmedia-go/config"
)

// ErrInvalidToken is the single failure value for token verification.
// Malformed payloads, bad signatures, expired tokens and missing
// subject claims all collapse into it so callers cannot distinguish the
// reason; the guard turns it into a uniform 401.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload: the subject user id plus the registered
// claims carrying expiration.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// The signing secret and TTL come from process-wide configuration,
// loaded once at startup and immutable thereafter.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenDuration,
	}
}

// Issue creates a signed HS256 token embedding userID and an absolute
// expiration instant (now + TTL).
func (s *TokenService) Issue(userID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "socialmedia",
			Subject:   strconv.Itoa(userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiration of tokenString and
// extracts the subject user id. Any failure returns ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
