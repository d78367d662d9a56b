package security

import (
	"fmt"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeBearer is the token_type returned with every access token
const TokenTypeBearer = "bearer"

// Claims is the JWT payload. The subject carries the username.
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 access tokens
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer creates an issuer signing with secret
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt issuer requires a secret key")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt issuer requires a positive token lifetime")
	}
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (i *JWTIssuer) Issue(user *users.User) (*users.AccessToken, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)

	claims := &Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &users.AccessToken{
		Token:     signed,
		TokenType: TokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse verifies the signature and expiry. Every failure is reported as users.ErrInvalidToken.
func (i *JWTIssuer) Parse(tokenString string) (*users.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", users.ErrInvalidToken, err)
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return nil, users.ErrInvalidToken
	}

	return &users.TokenClaims{
		TokenID:   claims.ID,
		UserID:    claims.UserID,
		Username:  claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

var _ users.TokenIssuer = (*JWTIssuer)(nil)
