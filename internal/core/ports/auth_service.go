package ports

import (
	"context"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// RegisterInput carries the data needed to create a user account.
type RegisterInput struct {
	Username    string
	Password    string
	Role        string
	CompanyName string
}

// AuthService implements account registration and session issuance.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed session token
	// together with the user it identifies.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, ident domain.Identity, currentPassword, newPassword string) error
}
