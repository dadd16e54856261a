// Package likes implements the like toggle: a single endpoint that
// either adds or removes the caller's like edge on a post.
package likes

// LikeRequest is the toggle payload. Liked=true asks to add the edge,
// liked=false asks to remove it. The liked field deliberately carries
// no validation tag so that an absent field reads as false (unlike).
type LikeRequest struct {
	PostID int  `json:"post_id" example:"1" validate:"required"`
	Liked  bool `json:"liked" example:"true"`
}

// DetailResponse is the confirmation payload for a successful toggle.
type DetailResponse struct {
	Detail string `json:"detail" example:"Successfully added like."`
}
