package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/auth"
	"github.com/user/socialmedia-go/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// UserService creates and retrieves user accounts.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, userID int) (*models.User, error)
}

type userServiceImpl struct {
	db     *pgxpool.Pool
	hasher auth.PasswordHasher
}

// NewUserService creates the user service.
func NewUserService(db *pgxpool.Pool, hasher auth.PasswordHasher) UserService {
	return &userServiceImpl{db: db, hasher: hasher}
}

// Create registers a new user. The password is hashed exactly once here
// and never mutated afterwards.
func (s *userServiceImpl) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		Username:    req.Username,
		Email:       strings.ToLower(req.Email),
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
		Region:      req.Region,
	}

	query := `INSERT INTO users (username, email, password, first_name, last_name, phone_number, country, region)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING user_id, is_active, is_superuser, is_verified, created_at, updated_at`
	err = s.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Password,
		user.FirstName, user.LastName, user.PhoneNumber, user.Country, user.Region,
	).Scan(&user.UserID, &user.IsActive, &user.IsSuperuser, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return nil, apperror.NewConflictError("username already exists", nil)
			}
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, apperror.NewConflictError("email already exists", nil)
			}
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	return user, nil
}

// GetByID retrieves a user by id. Also serves as the guard's user
// loader, so the NotFound error here doubles as the deleted-user signal.
func (s *userServiceImpl) GetByID(ctx context.Context, userID int) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, username, email, password, is_active, is_superuser, is_verified,
	                 first_name, last_name, phone_number, country, region, created_at, updated_at
	          FROM users WHERE user_id = $1`
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&user.UserID, &user.Username, &user.Email, &user.Password,
		&user.IsActive, &user.IsSuperuser, &user.IsVerified,
		&user.FirstName, &user.LastName, &user.PhoneNumber, &user.Country, &user.Region,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("User with user_id: %d does not exist.", userID), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}
