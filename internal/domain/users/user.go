package users

import (
	"errors"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/pkg/validators"
)

// Sentinel errors returned by user repositories and the auth service
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrInvalidToken       = errors.New("could not validate credentials")
)

// User entity
type User struct {
	ID              uint
	Username        string    `validate:"required,min=3,max=50,username"`
	Email           string    `validate:"required,email,max=255"`
	FirstName       string    `validate:"max=100"`
	LastName        string    `validate:"max=100"`
	HashedPassword  string    `validate:"required"`
	IsActive        bool      `validate:"-"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.Struct(u)
}

// Registration carries the fields a new account is created from
type Registration struct {
	Username  string `json:"username" validate:"required,min=3,max=50,username"`
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

// Validate for validating Registration struct
func (r *Registration) Validate() error {
	return validators.Struct(r)
}

// AccessToken is a signed bearer token handed out on login
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

// TokenClaims are the identity facts carried by an access token
type TokenClaims struct {
	TokenID   string
	UserID    uint
	Username  string
	ExpiresAt time.Time
}
