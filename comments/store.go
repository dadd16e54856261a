package comments

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/socialmedia-go/models"
)

// Store is the persistence interface for comments. Missing rows are
// reported as pgx.ErrNoRows; a create against a missing post surfaces
// the foreign key violation for the service to translate.
type Store interface {
	List(ctx context.Context, offset, limit int) ([]models.Comment, error)
	Get(ctx context.Context, commentID int) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID int) error
}

type pgStore struct {
	db *pgxpool.Pool
}

// NewStore creates the Postgres-backed comment store.
func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

const commentQuery = `
	SELECT c.comment_id, c.content, c.post_id, c.user_id, c.created_at, c.updated_at,
	       u.user_id, u.username, u.email
	FROM comments c
	JOIN users u ON u.user_id = c.user_id`

func (s *pgStore) List(ctx context.Context, offset, limit int) ([]models.Comment, error) {
	query := commentQuery + `
	ORDER BY c.comment_id
	OFFSET $1 LIMIT $2`
	rows, err := s.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.CommentID, &comment.Content, &comment.PostID, &comment.UserID,
			&comment.CreatedAt, &comment.UpdatedAt,
			&comment.Author.UserID, &comment.Author.Username, &comment.Author.Email,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}

func (s *pgStore) Get(ctx context.Context, commentID int) (*models.Comment, error) {
	query := commentQuery + `
	WHERE c.comment_id = $1`
	var comment models.Comment
	err := s.db.QueryRow(ctx, query, commentID).Scan(
		&comment.CommentID, &comment.Content, &comment.PostID, &comment.UserID,
		&comment.CreatedAt, &comment.UpdatedAt,
		&comment.Author.UserID, &comment.Author.Username, &comment.Author.Email,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *pgStore) Create(ctx context.Context, comment *models.Comment) error {
	query := `INSERT INTO comments (content, post_id, user_id)
	          VALUES ($1, $2, $3)
	          RETURNING comment_id, created_at, updated_at`
	return s.db.QueryRow(ctx, query, comment.Content, comment.PostID, comment.UserID).
		Scan(&comment.CommentID, &comment.CreatedAt, &comment.UpdatedAt)
}

func (s *pgStore) Update(ctx context.Context, comment *models.Comment) error {
	query := `UPDATE comments SET content = $1, updated_at = now()
	          WHERE comment_id = $2
	          RETURNING updated_at`
	return s.db.QueryRow(ctx, query, comment.Content, comment.CommentID).
		Scan(&comment.UpdatedAt)
}

func (s *pgStore) Delete(ctx context.Context, commentID int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	return err
}
