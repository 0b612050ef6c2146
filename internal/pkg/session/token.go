// internal/pkg/session/token.go
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pawtopia/storefront/internal/config"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// claim checks.
var ErrInvalidToken = errors.New("invalid session token")

const tokenType = "storage"

// Claims represents the session token claims. Namespace selects the storage
// namespace that stands in for one browser's local storage.
type Claims struct {
	Namespace string `json:"ns"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Manager issues and validates session tokens
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a new session token manager
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		secret: []byte(cfg.Session.Secret),
		issuer: cfg.App.Name,
		ttl:    cfg.Session.TokenTTL,
		now:    time.Now,
	}
}

// Issue creates a token for a fresh random namespace.
func (m *Manager) Issue() (string, *Claims, error) {
	return m.IssueFor(uuid.NewString())
}

// IssueFor creates a token for an existing namespace, extending its expiry.
func (m *Manager) IssueFor(namespace string) (string, *Claims, error) {
	now := m.now().UTC()

	claims := &Claims{
		Namespace: namespace,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   "ns:" + namespace,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, claims, nil
}

// Validate parses a token and returns its claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: unexpected token type %q", ErrInvalidToken, claims.TokenType)
	}
	if _, err := uuid.Parse(claims.Namespace); err != nil {
		return nil, fmt.Errorf("%w: malformed namespace", ErrInvalidToken)
	}

	return claims, nil
}

// RenewDue reports whether a token is past half its lifetime and should be
// reissued.
func (m *Manager) RenewDue(claims *Claims) bool {
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return true
	}
	half := claims.ExpiresAt.Sub(claims.IssuedAt.Time) / 2
	return m.now().After(claims.IssuedAt.Add(half))
}
