package domain

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrInvalidDate        = errors.New("invalid date format")
	ErrInvalidRole        = errors.New("invalid role")
)
