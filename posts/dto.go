// Package posts implements post CRUD with like/comment counts and
// ownership-guarded mutations.
package posts

import "github.com/user/socialmedia-go/models"

// CreatePostRequest is the payload for creating a post.
type CreatePostRequest struct {
	Title    string          `json:"title" example:"My first post" validate:"required,has_letter"`
	Content  string          `json:"content" example:"Hello world" validate:"required,has_letter"`
	Category models.Category `json:"category" example:"TECHNOLOGY" validate:"required,oneof=BUSINESS EDUCATION ENTERTAINMENT ENVIRONMENT FOOD LIFESTYLE PERSONAL POLITICS SPORTS TECHNOLOGY"`
}

// UpdatePostRequest is the payload for updating a post. Ownership is
// immutable; only the content fields can change.
type UpdatePostRequest struct {
	Title    string          `json:"title" validate:"required,has_letter"`
	Content  string          `json:"content" validate:"required,has_letter"`
	Category models.Category `json:"category" validate:"required,oneof=BUSINESS EDUCATION ENTERTAINMENT ENVIRONMENT FOOD LIFESTYLE PERSONAL POLITICS SPORTS TECHNOLOGY"`
}

// PostWithCounts pairs a post with its like and comment counts. The
// capitalized "Post" key is part of the wire format.
type PostWithCounts struct {
	Post     models.Post `json:"Post"`
	Likes    int64       `json:"likes"`
	Comments int64       `json:"comments"`
}
