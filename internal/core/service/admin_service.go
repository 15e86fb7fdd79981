package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/ports"
)

const (
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	passwordLength   = 10
)

// AdminService covers the company account lifecycle: listing, deletion
// and password resets. All routes reaching it are admin-gated.
type AdminService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, log: log}
}

func (s *AdminService) ListCompanies(ctx context.Context) ([]domain.User, error) {
	return s.users.ListCompanies(ctx)
}

// DeleteCompany removes the user record only. Orders and history keep
// their company_id pointing at the deleted account — orphaned but
// archived, still reachable through the admin list and report paths.
func (s *AdminService) DeleteCompany(ctx context.Context, companyID string) (*domain.User, error) {
	company, err := s.users.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, companyID); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("company_id", companyID).
		Str("company_name", company.CompanyName).
		Msg("company account deleted, orders retained")
	return company, nil
}

// ResetPassword generates a fresh random password, persists its hash and
// returns the plaintext exactly once.
func (s *AdminService) ResetPassword(ctx context.Context, companyID string) (*ports.PasswordReset, error) {
	company, err := s.users.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	password, err := generatePassword(passwordLength)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePasswordHash(ctx, companyID, string(hash)); err != nil {
		return nil, err
	}

	s.log.Info().Str("company_id", companyID).Msg("company password reset")
	return &ports.PasswordReset{
		CompanyName: company.CompanyName,
		Username:    company.Username,
		NewPassword: password,
	}, nil
}

// generatePassword draws n characters from a mixed alphanumeric
// alphabet using a cryptographically secure source.
func generatePassword(n int) (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = passwordAlphabet[idx.Int64()]
	}
	return string(b), nil
}
