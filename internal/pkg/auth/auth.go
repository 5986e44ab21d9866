package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"logistics/internal/core/domain/model/kernel"
)

// Role is the caller's role carried inside an access token.
type Role string

// Roles recognized by the portal.
const (
	RoleAdmin   Role = "admin"
	RoleShipper Role = "shipper"
	RoleDriver  Role = "driver"
)

// Errors returned by token issuing and verification.
var (
	// ErrSecretIsRequired is returned when constructing an issuer without a signing secret.
	ErrSecretIsRequired = errors.New("signing secret is required")
	// ErrInvalidToken is returned when a token fails signature or claims validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrPermissionDenied is returned when a principal's role does not allow an operation.
	ErrPermissionDenied = errors.New("permission denied")
)

// Principal identifies an authenticated caller: who they are and what role
// they act in. Authorization decisions in command handlers are made against
// the Principal explicitly, never against ambient request state.
type Principal struct {
	ID   kernel.UUID
	Role Role
}

// IsValid reports whether the role is one of the recognized roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleShipper, RoleDriver:
		return true
	}
	return false
}

// accessClaims is the JWT claims shape of an access token. The subject
// carries the principal ID and the role travels as a private claim.
type accessClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HMAC-signed access tokens. Driver access
// keys are issued once at driver creation and shown to the operator; the
// portal stores no credential material of its own.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token lifetime. A zero ttl issues tokens without an expiry, which is the
// mode used for driver access keys.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}

	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a signed access token for the principal.
func (i *TokenIssuer) Issue(p Principal) (string, error) {
	if err := p.ID.Validate(); err != nil {
		return "", err
	}
	if !p.Role.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidToken, p.Role)
	}

	claims := &accessClaims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  p.ID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if i.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(i.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify validates a token's signature and claims and reconstructs the
// Principal it was issued for.
func (i *TokenIssuer) Verify(tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{},
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !claims.Role.IsValid() {
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return Principal{ID: id, Role: claims.Role}, nil
}
