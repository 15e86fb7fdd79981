package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) {
	clone := *u
	r.byID[u.ID] = &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.byID {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.add(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindCompanyByName(_ context.Context, companyName string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Role == domain.RoleCompany && u.CompanyName == companyName {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (r *stubUserRepo) FindCompanyByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok || u.Role != domain.RoleCompany {
		return nil, domain.ErrCompanyNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListCompanies(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.byID {
		if u.Role == domain.RoleCompany {
			clone := *u
			clone.PasswordHash = ""
			out = append(out, clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

// ---------------------------------------------------------------------------
// Stub throttle
// ---------------------------------------------------------------------------

type stubThrottle struct {
	failures   map[string]int
	blocked    bool
	tooManyErr error
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: make(map[string]int)}
}

func (t *stubThrottle) TooMany(_ context.Context, _ string) (bool, error) {
	if t.tooManyErr != nil {
		return false, t.tooManyErr
	}
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	delete(t.failures, username)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

const testSecret = "unit-test-secret"

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func seedCompany(t *testing.T, repo *stubUserRepo, id, username, company, password string) {
	t.Helper()
	repo.add(&domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: mustHash(t, password),
		Role:         domain.RoleCompany,
		CompanyName:  company,
		CreatedAt:    time.Now().UTC(),
	})
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubThrottle(), testSecret, 0, discardLogger)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:    "acme",
		Password:    "s3cret99",
		Role:        "company",
		CompanyName: "Acme Deliveries",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("user id must be generated")
	}
	if user.Role != domain.RoleCompany {
		t.Errorf("expected role company, got %q", user.Role)
	}
	if user.PasswordHash == "s3cret99" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret99")) != nil {
		t.Error("stored hash must verify against the plaintext")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubThrottle(), testSecret, 0, discardLogger)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "x", Password: "secret1", Role: "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedCompany(t, repo, "u1", "acme", "Acme", "pw123456")
	svc := NewAuthService(repo, newStubThrottle(), testSecret, 0, discardLogger)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "acme", Password: "other99", Role: "company", CompanyName: "Other",
	})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedCompany(t, repo, "u1", "acme", "Acme", "pw123456")
	throttle := newStubThrottle()
	throttle.failures["acme"] = 3
	svc := NewAuthService(repo, throttle, testSecret, time.Hour, discardLogger)

	token, user, err := svc.Login(context.Background(), "acme", "pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("expected user u1, got %q", user.ID)
	}
	if throttle.failures["acme"] != 0 {
		t.Error("successful login must reset the failure counter")
	}

	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token must be valid: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "u1" {
		t.Errorf("expected sub u1, got %v", claims["sub"])
	}
	if claims["role"] != "company" {
		t.Errorf("expected role company, got %v", claims["role"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedCompany(t, repo, "u1", "acme", "Acme", "pw123456")
	throttle := newStubThrottle()
	svc := NewAuthService(repo, throttle, testSecret, 0, discardLogger)

	_, _, err := svc.Login(context.Background(), "acme", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures["acme"] != 1 {
		t.Error("failed login must be recorded")
	}
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	throttle := newStubThrottle()
	svc := NewAuthService(newStubUserRepo(), throttle, testSecret, 0, discardLogger)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
	if throttle.failures["ghost"] != 1 {
		t.Error("unknown-user attempt must still count as a failure")
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	seedCompany(t, repo, "u1", "acme", "Acme", "pw123456")
	throttle := newStubThrottle()
	throttle.blocked = true
	svc := NewAuthService(repo, throttle, testSecret, 0, discardLogger)

	_, _, err := svc.Login(context.Background(), "acme", "pw123456")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ThrottleErrorFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	seedCompany(t, repo, "u1", "acme", "Acme", "pw123456")
	throttle := newStubThrottle()
	throttle.tooManyErr = errors.New("redis down")
	svc := NewAuthService(repo, throttle, testSecret, 0, discardLogger)

	_, _, err := svc.Login(context.Background(), "acme", "pw123456")
	if err != nil {
		t.Fatalf("throttle outage must not block logins: %v", err)
	}
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func TestAuthService_ChangePassword_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedCompany(t, repo, "u1", "acme", "Acme", "oldpass1")
	svc := NewAuthService(repo, newStubThrottle(), testSecret, 0, discardLogger)

	ident := domain.Identity{ID: "u1", Username: "acme", Role: domain.RoleCompany}
	if err := svc.ChangePassword(context.Background(), ident, "oldpass1", "newpass2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID["u1"]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass2")) != nil {
		t.Error("new password must verify against the stored hash")
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := newStubUserRepo()
	seedCompany(t, repo, "u1", "acme", "Acme", "oldpass1")
	svc := NewAuthService(repo, newStubThrottle(), testSecret, 0, discardLogger)

	ident := domain.Identity{ID: "u1", Username: "acme", Role: domain.RoleCompany}
	err := svc.ChangePassword(context.Background(), ident, "not-it", "newpass2")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
