package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"
)

// authService implements the AuthService interface for registration, login and token resolution
type authService struct {
	userRepository users.UserRepository
	hasher         users.PasswordHasher
	issuer         users.TokenIssuer
	logger         logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepository users.UserRepository,
	hasher users.PasswordHasher,
	issuer users.TokenIssuer,
	logger logger.Logger,
) (users.AuthService, error) {
	if userRepository == nil || hasher == nil || issuer == nil {
		return nil, fmt.Errorf("auth service requires a user repository, a password hasher and a token issuer")
	}
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         issuer,
		logger:         logger,
	}, nil
}

// Register creates a new active user with a hashed password.
func (s *authService) Register(ctx context.Context, registration *users.Registration) (*users.User, error) {
	registration.Username = strings.TrimSpace(registration.Username)
	registration.Email = strings.ToLower(strings.TrimSpace(registration.Email))

	if err := registration.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.userRepository.ExistsByUsernameOrEmail(ctx, registration.Username, registration.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, users.ErrUserExists
	}

	hashed, err := s.hasher.Hash(registration.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Username:        registration.Username,
		Email:           registration.Email,
		FirstName:       registration.FirstName,
		LastName:        registration.LastName,
		HashedPassword:  hashed,
		IsActive:        true,
		DateTimeCreated: time.Now(),
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered user ", user.Username)
	return user, nil
}

// Authenticate checks credentials and issues an access token.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*users.AccessToken, error) {
	user, err := s.userRepository.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, users.ErrInactiveUser
	}

	return s.issuer.Issue(user)
}

// ResolveToken verifies a bearer token and loads the user it was issued to.
func (s *authService) ResolveToken(ctx context.Context, token string) (*users.User, error) {
	claims, err := s.issuer.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidToken
		}
		return nil, err
	}

	// A token outlives a rename only until it expires
	if user.Username != claims.Username {
		return nil, users.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, users.ErrInactiveUser
	}

	return user, nil
}
