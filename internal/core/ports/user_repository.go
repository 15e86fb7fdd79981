package ports

import (
	"context"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// UserRepository defines persistence operations over the users collection.
type UserRepository interface {
	// Create inserts a new user. A duplicate username yields
	// domain.ErrUsernameTaken (unique index on username).
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindCompanyByName resolves a company_name to its role=company user.
	FindCompanyByName(ctx context.Context, companyName string) (*domain.User, error)
	FindCompanyByID(ctx context.Context, id string) (*domain.User, error)
	// ListCompanies returns all role=company users with PasswordHash
	// stripped at the query level.
	ListCompanies(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}
