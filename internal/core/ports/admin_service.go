package ports

import (
	"context"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// PasswordReset is returned once; the plaintext is never stored.
type PasswordReset struct {
	CompanyName string
	Username    string
	NewPassword string
}

// AdminService covers company account lifecycle operations.
type AdminService interface {
	ListCompanies(ctx context.Context) ([]domain.User, error)
	// DeleteCompany removes the user record only; the company's orders
	// and history are retained as archive.
	DeleteCompany(ctx context.Context, companyID string) (*domain.User, error)
	ResetPassword(ctx context.Context, companyID string) (*PasswordReset, error)
}
