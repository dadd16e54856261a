package likes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/models"
)

// LikeService implements the like toggle.
type LikeService interface {
	Toggle(ctx context.Context, user *models.User, req LikeRequest) (string, error)
}

type likeServiceImpl struct {
	store Store
}

// NewLikeService creates the like service.
func NewLikeService(store Store) LikeService {
	return &likeServiceImpl{store: store}
}

// Toggle adds or removes the caller's like edge on a post. The checks
// run in a fixed order: post existence, then the self-like rule, then
// the edge state. A concurrent duplicate insert is reported as the same
// Conflict as an observed duplicate.
func (s *likeServiceImpl) Toggle(ctx context.Context, user *models.User, req LikeRequest) (string, error) {
	ownerID, err := s.store.PostOwner(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.NewNotFoundError(fmt.Sprintf("Post with post_id: %d does not exist.", req.PostID), nil)
		}
		return "", apperror.NewDatabaseError("failed to get post", err)
	}

	if ownerID == user.UserID {
		return "", apperror.NewUnauthorizedError("You cannot like your own post.", nil)
	}

	existing, err := s.store.Find(ctx, user.UserID, req.PostID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", apperror.NewDatabaseError("failed to look up like", err)
	}
	found := err == nil

	if req.Liked {
		if found {
			return "", s.conflict(user.UserID, req.PostID)
		}
		if err := s.store.Create(ctx, user.UserID, req.PostID); err != nil {
			if errors.Is(err, ErrDuplicate) {
				return "", s.conflict(user.UserID, req.PostID)
			}
			return "", apperror.NewDatabaseError("failed to create like", err)
		}
		return "Successfully added like.", nil
	}

	if !found {
		return "", apperror.NewNotFoundError("Like does not exist.", nil)
	}
	if err := s.store.Delete(ctx, existing.LikeID); err != nil {
		return "", apperror.NewDatabaseError("failed to delete like", err)
	}
	return "Successfully deleted like.", nil
}

func (s *likeServiceImpl) conflict(userID, postID int) error {
	message := fmt.Sprintf("User with user_id: %d has already liked on post with post_id: %d.", userID, postID)
	return apperror.NewConflictError(message, nil)
}
