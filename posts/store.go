package posts

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/socialmedia-go/models"
)

// Store is the narrow persistence interface the post service depends
// on. Methods return pgx.ErrNoRows for missing rows; the service maps
// storage errors to the API taxonomy.
type Store interface {
	ListWithCounts(ctx context.Context, offset, limit int) ([]PostWithCounts, error)
	GetWithCounts(ctx context.Context, postID int) (*PostWithCounts, error)
	Get(ctx context.Context, postID int) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int) error
}

type pgStore struct {
	db *pgxpool.Pool
}

// NewStore creates the Postgres-backed post store.
func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

// Counts use correlated subqueries; joining likes and comments in one
// query multiplies the two counts together.
const postWithCountsQuery = `
	SELECT p.post_id, p.title, p.content, p.category, p.user_id, p.created_at, p.updated_at,
	       u.user_id, u.username, u.email,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS likes,
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.post_id) AS comments
	FROM posts p
	JOIN users u ON u.user_id = p.user_id`

func (s *pgStore) ListWithCounts(ctx context.Context, offset, limit int) ([]PostWithCounts, error) {
	query := postWithCountsQuery + `
	ORDER BY p.post_id
	OFFSET $1 LIMIT $2`
	rows, err := s.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []PostWithCounts{}
	for rows.Next() {
		var item PostWithCounts
		if err := scanPostWithCounts(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *pgStore) GetWithCounts(ctx context.Context, postID int) (*PostWithCounts, error) {
	query := postWithCountsQuery + `
	WHERE p.post_id = $1`
	var item PostWithCounts
	if err := scanPostWithCounts(s.db.QueryRow(ctx, query, postID), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *pgStore) Get(ctx context.Context, postID int) (*models.Post, error) {
	var post models.Post
	query := `SELECT p.post_id, p.title, p.content, p.category, p.user_id, p.created_at, p.updated_at,
	                 u.user_id, u.username, u.email
	          FROM posts p JOIN users u ON u.user_id = p.user_id
	          WHERE p.post_id = $1`
	err := s.db.QueryRow(ctx, query, postID).Scan(
		&post.PostID, &post.Title, &post.Content, &post.Category, &post.UserID,
		&post.CreatedAt, &post.UpdatedAt,
		&post.Author.UserID, &post.Author.Username, &post.Author.Email,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *pgStore) Create(ctx context.Context, post *models.Post) error {
	query := `INSERT INTO posts (title, content, category, user_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING post_id, created_at, updated_at`
	return s.db.QueryRow(ctx, query, post.Title, post.Content, post.Category, post.UserID).
		Scan(&post.PostID, &post.CreatedAt, &post.UpdatedAt)
}

func (s *pgStore) Update(ctx context.Context, post *models.Post) error {
	query := `UPDATE posts SET title = $1, content = $2, category = $3, updated_at = now()
	          WHERE post_id = $4
	          RETURNING updated_at`
	return s.db.QueryRow(ctx, query, post.Title, post.Content, post.Category, post.PostID).
		Scan(&post.UpdatedAt)
}

func (s *pgStore) Delete(ctx context.Context, postID int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	return err
}

// scanner covers both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPostWithCounts(row scanner, item *PostWithCounts) error {
	return row.Scan(
		&item.Post.PostID, &item.Post.Title, &item.Post.Content, &item.Post.Category,
		&item.Post.UserID, &item.Post.CreatedAt, &item.Post.UpdatedAt,
		&item.Post.Author.UserID, &item.Post.Author.Username, &item.Post.Author.Email,
		&item.Likes, &item.Comments,
	)
}
