package auth

// LoginRequest carries the login form fields. Following the OAuth2
// password flow the email travels in the `username` field.
type LoginRequest struct {
	Username string `json:"username" example:"user@example.com"`
	Password string `json:"password" example:"!Strongpass1"`
}

// TokenResponse is returned to the client upon successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}
