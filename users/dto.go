// Package users handles registration and public profile lookup.
package users

// CreateUserRequest is the registration payload. The optional profile
// fields are validated only when present.
type CreateUserRequest struct {
	Username    string  `json:"username" example:"jessica" validate:"required,min=5,max=15,lowercase,no_whitespace,username_chars"`
	Email       string  `json:"email" example:"jessica@gmail.com" validate:"required,email"`
	Password    string  `json:"password" example:"!Jessica123" validate:"required,min=8,no_whitespace,password_strength"`
	FirstName   *string `json:"first_name,omitempty" example:"Jessica" validate:"omitempty,name_format"`
	LastName    *string `json:"last_name,omitempty" example:"Smith" validate:"omitempty,name_format"`
	PhoneNumber *string `json:"phone_number,omitempty" example:"0671234567" validate:"omitempty,phone_format"`
	Country     *string `json:"country,omitempty" example:"Ukraine" validate:"omitempty,place_format"`
	Region      *string `json:"region,omitempty" example:"Kyiv" validate:"omitempty,place_format"`
}
