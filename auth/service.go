package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/models"
)

// Service authenticates users and issues access tokens.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
}

type authServiceImpl struct {
	db     *pgxpool.Pool
	hasher PasswordHasher
	tokens *TokenService
}

// NewService creates the authentication service.
func NewService(db *pgxpool.Pool, hasher PasswordHasher, tokens *TokenService) Service {
	return &authServiceImpl{db: db, hasher: hasher, tokens: tokens}
}

// Login verifies the credentials and returns a bearer token. Unknown
// email and wrong password produce the same response so the endpoint
// does not reveal which part was wrong.
func (s *authServiceImpl) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.getUserByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewUnauthorizedError("Invalid Credentials.", nil)
		}
		log.Printf("login: failed to get user by email: %v", err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, apperror.NewUnauthorizedError("Invalid Credentials.", nil)
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue access token", err)
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authServiceImpl) getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, username, email, password FROM users WHERE email = $1`
	err := s.db.QueryRow(ctx, query, strings.ToLower(email)).
		Scan(&user.UserID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
