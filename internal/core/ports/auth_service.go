package ports

import (
	"context"

	"github.com/supernova-club/community-api/internal/core/domain"
)

// SignUpInput carries the registration form fields. All fields are required.
type SignUpInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// AuthService implements the two local credential strategies. Both return the
// authenticated user on success; session establishment is the caller's job.
type AuthService interface {
	// SignIn fails with domain.ErrUserNotFound or domain.ErrInvalidPassword.
	SignIn(ctx context.Context, username, password string) (*domain.User, error)
	// SignUp fails with domain.ErrUserExists or domain.ErrInvalidInput.
	// The new record is fully persisted before SignUp returns.
	SignUp(ctx context.Context, in SignUpInput) (*domain.User, error)
}
