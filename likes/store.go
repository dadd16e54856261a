package likes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/socialmedia-go/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations; uq_user_post raises it when two inserts race.
const pgUniqueViolation = "23505"

// ErrDuplicate reports an insert that lost the race against a
// concurrent like of the same post by the same user.
var ErrDuplicate = errors.New("like already exists")

// Store is the persistence interface for like edges. PostOwner and Find
// report missing rows as pgx.ErrNoRows; Create reports a duplicate edge
// as ErrDuplicate.
type Store interface {
	PostOwner(ctx context.Context, postID int) (int, error)
	Find(ctx context.Context, userID, postID int) (*models.Like, error)
	Create(ctx context.Context, userID, postID int) error
	Delete(ctx context.Context, likeID int) error
}

type pgStore struct {
	db *pgxpool.Pool
}

// NewStore creates the Postgres-backed like store.
func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

func (s *pgStore) PostOwner(ctx context.Context, postID int) (int, error) {
	var ownerID int
	err := s.db.QueryRow(ctx, `SELECT user_id FROM posts WHERE post_id = $1`, postID).Scan(&ownerID)
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

func (s *pgStore) Find(ctx context.Context, userID, postID int) (*models.Like, error) {
	var like models.Like
	query := `SELECT like_id, user_id, post_id, created_at FROM likes
	          WHERE user_id = $1 AND post_id = $2`
	err := s.db.QueryRow(ctx, query, userID, postID).
		Scan(&like.LikeID, &like.UserID, &like.PostID, &like.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (s *pgStore) Create(ctx context.Context, userID, postID int) error {
	_, err := s.db.Exec(ctx, `INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`, userID, postID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *pgStore) Delete(ctx context.Context, likeID int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM likes WHERE like_id = $1`, likeID)
	return err
}
