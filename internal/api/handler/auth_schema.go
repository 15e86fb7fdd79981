package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username    string `json:"username"     validate:"required"`
	Password    string `json:"password"     validate:"required,min=6"`
	Role        string `json:"role"         validate:"required,oneof=admin company"`
	CompanyName string `json:"company_name"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

// userResponse is the public user view; the password hash never leaves
// the repository layer.
type userResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
}

type sessionResponse struct {
	User userResponse `json:"user"`
}

type registerResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type companyResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type passwordResetResponse struct {
	Message     string `json:"message"`
	CompanyName string `json:"company_name"`
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
}
