package users

import (
	"context"
)

// AuthService defines registration, login and token resolution.
type AuthService interface {
	// Register creates a new active user with a hashed password.
	// It returns ErrUserExists when the username or email is taken.
	Register(ctx context.Context, registration *Registration) (*User, error)

	// Authenticate checks credentials and issues an access token.
	// It returns ErrInvalidCredentials for an unknown user or a wrong password.
	Authenticate(ctx context.Context, username, password string) (*AccessToken, error)

	// ResolveToken verifies a bearer token and loads the user it was issued to.
	ResolveToken(ctx context.Context, token string) (*User, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User by ID
	GetByID(ctx context.Context, userID uint) (*User, error)
	// GetByUsername retrieves a User by username
	GetByUsername(ctx context.Context, username string) (*User, error)
	// ExistsByUsernameOrEmail reports whether either value is already registered
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// TokenIssuer signs and parses access tokens
type TokenIssuer interface {
	Issue(user *User) (*AccessToken, error)
	Parse(token string) (*TokenClaims, error)
}
