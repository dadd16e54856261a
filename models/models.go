// Package models defines the domain entities shared by every module:
// users, posts, comments and like edges, together with the post
// category enumeration. Keeping them in one place avoids import cycles
// between the auth middleware (which loads a User) and the modules that
// consume the authenticated identity.
package models

import "time"

// Category classifies a post. The set of values is fixed and enforced
// both at validation time and by the API documentation.
type Category string

const (
	CategoryBusiness      Category = "BUSINESS"
	CategoryEducation     Category = "EDUCATION"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryEnvironment   Category = "ENVIRONMENT"
	CategoryFood          Category = "FOOD"
	CategoryLifestyle     Category = "LIFESTYLE"
	CategoryPersonal      Category = "PERSONAL"
	CategoryPolitics      Category = "POLITICS"
	CategorySports        Category = "SPORTS"
	CategoryTechnology    Category = "TECHNOLOGY"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryBusiness,
	CategoryEducation,
	CategoryEntertainment,
	CategoryEnvironment,
	CategoryFood,
	CategoryLifestyle,
	CategoryPersonal,
	CategoryPolitics,
	CategorySports,
	CategoryTechnology,
}

// Valid reports whether c is a member of the category enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// User represents a registered account. The password column holds the
// bcrypt hash and is never serialized; the `json:"-"` tag keeps it out
// of every API response.
type User struct {
	UserID      int       `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	IsVerified  bool      `json:"is_verified"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	PhoneNumber *string   `json:"phone_number"`
	Country     *string   `json:"country"`
	Region      *string   `json:"region"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary returns the public author representation embedded in post
// and comment responses.
func (u *User) Summary() UserSummary {
	return UserSummary{UserID: u.UserID, Username: u.Username, Email: u.Email}
}

// UserSummary is the compact author representation.
type UserSummary struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post is owned exclusively by its creator; ownership never changes
// after creation. The owner id is exposed only through Author.
type Post struct {
	PostID    int         `json:"post_id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Category  Category    `json:"category"`
	UserID    int         `json:"-"`
	Author    UserSummary `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Comment belongs to a post and is cascade-deleted with it.
type Comment struct {
	CommentID int         `json:"comment_id"`
	Content   string      `json:"content"`
	PostID    int         `json:"post_id"`
	UserID    int         `json:"-"`
	Author    UserSummary `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Like is a directed "user likes post" edge. At most one row may exist
// per (user_id, post_id) pair; the uq_user_post constraint enforces
// this even under concurrent toggles.
type Like struct {
	LikeID    int       `json:"like_id"`
	UserID    int       `json:"user_id"`
	PostID    int       `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
