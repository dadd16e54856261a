package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/auth"
	"github.com/user/socialmedia-go/models"
)

// PostService implements post listing and ownership-guarded CRUD.
type PostService interface {
	List(ctx context.Context, offset, limit int) ([]PostWithCounts, error)
	Get(ctx context.Context, postID int) (*PostWithCounts, error)
	Create(ctx context.Context, user *models.User, req CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, user *models.User, postID int, req UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, user *models.User, postID int) error
}

type postServiceImpl struct {
	store Store
}

// NewPostService creates the post service.
func NewPostService(store Store) PostService {
	return &postServiceImpl{store: store}
}

func (s *postServiceImpl) List(ctx context.Context, offset, limit int) ([]PostWithCounts, error) {
	result, err := s.store.ListWithCounts(ctx, offset, limit)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}
	return result, nil
}

func (s *postServiceImpl) Get(ctx context.Context, postID int) (*PostWithCounts, error) {
	item, err := s.store.GetWithCounts(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Post with post_id: %d was not found.", postID), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get post", err)
	}
	return item, nil
}

func (s *postServiceImpl) Create(ctx context.Context, user *models.User, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		UserID:   user.UserID,
		Author:   user.Summary(),
	}
	if err := s.store.Create(ctx, post); err != nil {
		return nil, apperror.NewDatabaseError("failed to create post", err)
	}
	return post, nil
}

// Update rewrites a post's content fields. The existence check runs
// before the ownership check so a missing post is 404, never 403.
func (s *postServiceImpl) Update(ctx context.Context, user *models.User, postID int, req UpdatePostRequest) (*models.Post, error) {
	post, err := s.lookup(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(post.UserID, user.UserID); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Category = req.Category
	if err := s.store.Update(ctx, post); err != nil {
		return nil, apperror.NewDatabaseError("failed to update post", err)
	}
	return post, nil
}

func (s *postServiceImpl) Delete(ctx context.Context, user *models.User, postID int) error {
	post, err := s.lookup(ctx, postID)
	if err != nil {
		return err
	}
	if err := auth.RequireOwner(post.UserID, user.UserID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, postID); err != nil {
		return apperror.NewDatabaseError("failed to delete post", err)
	}
	return nil
}

func (s *postServiceImpl) lookup(ctx context.Context, postID int) (*models.Post, error) {
	post, err := s.store.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Post with post_id: %d does not exist.", postID), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get post", err)
	}
	return post, nil
}
