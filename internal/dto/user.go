package dto

// RegisterUserRequest defines the data needed to register a new user.
// Password strength mirrors the registration rules: at least 8 characters
// with a lowercase letter, an uppercase letter, a digit and a special character.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// LoginRequest defines the data needed to authenticate.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
