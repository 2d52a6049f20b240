package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"members-portal/internal/user"
)

var (
	// ErrInvalidInput covers missing and structurally malformed fields.
	// Callers render a generic message with no field-level detail.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken is returned when signup hits an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSelfDemotion is returned when an admin tries to revoke their own
	// admin role.
	ErrSelfDemotion = errors.New("cannot demote own account")
)

// Service implements signup, login and role management over the
// credential store. Every store call runs under a bounded timeout.
type Service struct {
	users   user.Store
	timeout time.Duration
}

func NewService(users user.Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{users: users, timeout: timeout}
}

func (s *Service) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Signup validates the input, hashes the password and creates a new
// account with the user role.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*user.User, error) {
	in := signupInput{Name: name, Email: email, Password: password}
	if err := validate.Struct(in); err != nil {
		return nil, ErrInvalidInput
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: signup lookup: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	u := &user.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         user.RoleUser,
	}

	err = s.users.Insert(ctx, u)
	if errors.Is(err, user.ErrDuplicateEmail) {
		// lost a concurrent signup race; same outcome as the lookup
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("auth: signup insert: %w", err)
	}

	return u, nil
}

// Login validates the input shape exactly as signup does, then verifies
// the password against the stored hash.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, error) {
	in := loginInput{Email: email, Password: password}
	if err := validate.Struct(in); err != nil {
		return nil, ErrInvalidInput
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: login lookup: %w", err)
	}
	if u == nil {
		// hide whether the account exists
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Promote grants the admin role. An absent email is a no-op.
func (s *Service) Promote(ctx context.Context, email string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.users.SetRole(ctx, email, user.RoleAdmin); err != nil {
		return fmt.Errorf("auth: promote: %w", err)
	}
	return nil
}

// Demote revokes the admin role unless the caller targets their own
// account, which would lock them out.
func (s *Service) Demote(ctx context.Context, callerEmail, targetEmail string) error {
	if callerEmail == targetEmail {
		return ErrSelfDemotion
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.users.SetRole(ctx, targetEmail, user.RoleUser); err != nil {
		return fmt.Errorf("auth: demote: %w", err)
	}
	return nil
}

// ListUsers returns every account for the admin listing view.
func (s *Service) ListUsers(ctx context.Context) ([]user.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: list users: %w", err)
	}
	return users, nil
}
