package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
	"github.com/supernova-club/community-api/internal/pkg/password"
)

// AuthService implements the local sign-in and sign-up strategies.
type AuthService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// SignIn authenticates a username/password pair against the stored digest.
func (s *AuthService) SignIn(ctx context.Context, username, pass string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Info().Str("username", username).Msg("sign-in: user not found")
		}
		return nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		s.log.Info().Str("username", username).Msg("sign-in: invalid password")
		return nil, domain.ErrInvalidPassword
	}

	return user, nil
}

// SignUp registers a new user. The record is fully persisted before SignUp
// returns, so the caller may establish a session immediately.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" ||
		in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		s.log.Info().Str("username", in.Username).Msg("sign-up: user already exists")
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		LowerLast:    strings.ToLower(in.LastName),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The unique username index can still reject the write when two
		// signups race past the existence check above.
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		s.log.Error().Err(err).Str("username", in.Username).Msg("sign-up: create failed")
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}
