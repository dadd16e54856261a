package likes

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/user/socialmedia-go/apperror"
	"github.com/user/socialmedia-go/models"
)

type edge struct {
	userID, postID int
}

// fakeStore tracks posts and like edges in memory. raceOnCreate makes
// Create fail with ErrDuplicate even when Find saw nothing, simulating
// a concurrent insert winning between the two calls.
type fakeStore struct {
	owners       map[int]int // post id -> owner id
	edges        map[edge]int
	nextID       int
	raceOnCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{owners: map[int]int{}, edges: map[edge]int{}, nextID: 1}
}

func (f *fakeStore) addPost(postID, ownerID int) {
	f.owners[postID] = ownerID
}

func (f *fakeStore) PostOwner(ctx context.Context, postID int) (int, error) {
	ownerID, ok := f.owners[postID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	return ownerID, nil
}

func (f *fakeStore) Find(ctx context.Context, userID, postID int) (*models.Like, error) {
	likeID, ok := f.edges[edge{userID, postID}]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &models.Like{LikeID: likeID, UserID: userID, PostID: postID}, nil
}

func (f *fakeStore) Create(ctx context.Context, userID, postID int) error {
	key := edge{userID, postID}
	if f.raceOnCreate {
		return ErrDuplicate
	}
	if _, exists := f.edges[key]; exists {
		return ErrDuplicate
	}
	f.edges[key] = f.nextID
	f.nextID++
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, likeID int) error {
	for key, id := range f.edges {
		if id == likeID {
			delete(f.edges, key)
		}
	}
	return nil
}

func liker(id int) *models.User {
	return &models.User{UserID: id, Username: "user", Email: "user@gmail.com"}
}

func TestToggleLikeAndUnlike(t *testing.T) {
	store := newFakeStore()
	store.addPost(1, 10)
	service := NewLikeService(store)
	user := liker(2)

	detail, err := service.Toggle(context.Background(), user, LikeRequest{PostID: 1, Liked: true})
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if want := "Successfully added like."; detail != want {
		t.Errorf("detail = %q, want %q", detail, want)
	}

	detail, err = service.Toggle(context.Background(), user, LikeRequest{PostID: 1, Liked: false})
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if want := "Successfully deleted like."; detail != want {
		t.Errorf("detail = %q, want %q", detail, want)
	}
}

func TestToggleRepeatLikeIsConflict(t *testing.T) {
	store := newFakeStore()
	store.addPost(1, 10)
	service := NewLikeService(store)
	user := liker(2)

	if _, err := service.Toggle(context.Background(), user, LikeRequest{PostID: 1, Liked: true}); err != nil {
		t.Fatalf("first like: %v", err)
	}

	_, err := service.Toggle(context.Background(), user, LikeRequest{PostID: 1, Liked: true})
	if !apperror.IsConflictError(err) {
		t.Fatalf("second like: err = %v, want Conflict", err)
	}
	appErr, _ := apperror.FromError(err)
	if want := "User with user_id: 2 has already liked on post with post_id: 1."; appErr.Message != want {
		t.Errorf("message = %q, want %q", appErr.Message, want)
	}
}

func TestToggleUnlikeWithoutLikeIsNotFound(t *testing.T) {
	store := newFakeStore()
	store.addPost(1, 10)
	service := NewLikeService(store)

	_, err := service.Toggle(context.Background(), liker(2), LikeRequest{PostID: 1, Liked: false})
	if !apperror.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	appErr, _ := apperror.FromError(err)
	if want := "Like does not exist."; appErr.Message != want {
		t.Errorf("message = %q, want %q", appErr.Message, want)
	}
}

func TestToggleSelfLikeForbidden(t *testing.T) {
	store := newFakeStore()
	store.addPost(1, 10)
	service := NewLikeService(store)
	owner := liker(10)

	for _, liked := range []bool{true, false} {
		_, err := service.Toggle(context.Background(), owner, LikeRequest{PostID: 1, Liked: liked})
		if !apperror.IsUnauthorizedError(err) {
			t.Fatalf("liked=%v: err = %v, want Unauthorized", liked, err)
		}
		appErr, _ := apperror.FromError(err)
		if want := "You cannot like your own post."; appErr.Message != want {
			t.Errorf("message = %q, want %q", appErr.Message, want)
		}
	}
}

func TestToggleMissingPost(t *testing.T) {
	service := NewLikeService(newFakeStore())

	_, err := service.Toggle(context.Background(), liker(2), LikeRequest{PostID: 99, Liked: true})
	if !apperror.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	appErr, _ := apperror.FromError(err)
	if want := "Post with post_id: 99 does not exist."; appErr.Message != want {
		t.Errorf("message = %q, want %q", appErr.Message, want)
	}
}

// The post lookup runs before the self-like rule: a missing post is 404
// even for its former owner.
func TestToggleMissingPostBeatsSelfLike(t *testing.T) {
	store := newFakeStore()
	service := NewLikeService(store)

	_, err := service.Toggle(context.Background(), liker(10), LikeRequest{PostID: 1, Liked: true})
	if !apperror.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

// An insert losing the uq_user_post race reports the same Conflict as
// an observed duplicate.
func TestToggleInsertRaceIsConflict(t *testing.T) {
	store := newFakeStore()
	store.addPost(1, 10)
	store.raceOnCreate = true
	service := NewLikeService(store)

	_, err := service.Toggle(context.Background(), liker(2), LikeRequest{PostID: 1, Liked: true})
	if !apperror.IsConflictError(err) {
		t.Fatalf("err = %v, want Conflict", err)
	}
}
