// Package comments implements comment CRUD under the same ownership
// rules as posts.
package comments

// CreateCommentRequest is the payload for commenting on a post.
type CreateCommentRequest struct {
	Content string `json:"content" example:"Great post!" validate:"required,has_letter"`
	PostID  int    `json:"post_id" example:"1" validate:"required"`
}

// UpdateCommentRequest is the payload for editing a comment. The target
// post and the author are immutable; only the text can change.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,has_letter"`
}
