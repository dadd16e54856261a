package comments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/auth"
	"github.com/user/socialmedia-go/models"
)

// pgForeignKeyViolation is the PostgreSQL error code raised when a
// comment references a post that no longer exists.
const pgForeignKeyViolation = "23503"

// CommentService implements comment listing and ownership-guarded CRUD.
type CommentService interface {
	List(ctx context.Context, offset, limit int) ([]models.Comment, error)
	Get(ctx context.Context, commentID int) (*models.Comment, error)
	Create(ctx context.Context, user *models.User, req CreateCommentRequest) (*models.Comment, error)
	Update(ctx context.Context, user *models.User, commentID int, req UpdateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, user *models.User, commentID int) error
}

type commentServiceImpl struct {
	store Store
}

// NewCommentService creates the comment service.
func NewCommentService(store Store) CommentService {
	return &commentServiceImpl{store: store}
}

func (s *commentServiceImpl) List(ctx context.Context, offset, limit int) ([]models.Comment, error) {
	result, err := s.store.List(ctx, offset, limit)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list comments", err)
	}
	return result, nil
}

func (s *commentServiceImpl) Get(ctx context.Context, commentID int) (*models.Comment, error) {
	return s.lookup(ctx, commentID)
}

// Create attaches a comment to a post. The post's existence is enforced
// by the foreign key, so a vanished post is caught even when it is
// deleted between a check and the insert.
func (s *commentServiceImpl) Create(ctx context.Context, user *models.User, req CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		Content: req.Content,
		PostID:  req.PostID,
		UserID:  user.UserID,
		Author:  user.Summary(),
	}
	if err := s.store.Create(ctx, comment); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Post with post_id: %d does not exist.", req.PostID), nil)
		}
		return nil, apperror.NewDatabaseError("failed to create comment", err)
	}
	return comment, nil
}

// Update edits a comment's text. Lookup runs before the ownership check
// so a missing comment is 404, never 403.
func (s *commentServiceImpl) Update(ctx context.Context, user *models.User, commentID int, req UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.lookup(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(comment.UserID, user.UserID); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.store.Update(ctx, comment); err != nil {
		return nil, apperror.NewDatabaseError("failed to update comment", err)
	}
	return comment, nil
}

func (s *commentServiceImpl) Delete(ctx context.Context, user *models.User, commentID int) error {
	comment, err := s.lookup(ctx, commentID)
	if err != nil {
		return err
	}
	if err := auth.RequireOwner(comment.UserID, user.UserID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, commentID); err != nil {
		return apperror.NewDatabaseError("failed to delete comment", err)
	}
	return nil
}

func (s *commentServiceImpl) lookup(ctx context.Context, commentID int) (*models.Comment, error) {
	comment, err := s.store.Get(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Comment with comment_id: %d does not exist.", commentID), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get comment", err)
	}
	return comment, nil
}
