// internal/auth/auth.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// BankerSubject is the subject of tokens allowed to submit dice.
const BankerSubject = "banker"

// ErrInvalidCredentials is returned when a password or token is rejected.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator checks the banker password and issues short-lived tokens.
type Authenticator struct {
	secret       []byte
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time
}

// New returns an Authenticator. An empty passwordHash disables authentication.
func New(secret, passwordHash string, ttl time.Duration) *Authenticator {
	return &Authenticator{
		secret:       []byte(secret),
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		now:          time.Now,
	}
}

// Enabled reports whether a banker password is configured.
func (a *Authenticator) Enabled() bool { return len(a.passwordHash) > 0 }

// Login checks password and returns a signed token.
func (a *Authenticator) Login(password string) (string, error) {
	if !a.Enabled() {
		return "", fmt.Errorf("no banker password configured: %w", ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   BankerSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify validates a token issued by Login.
func (a *Authenticator) Verify(token string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if claims.Subject != BankerSubject {
		return fmt.Errorf("unexpected subject %q: %w", claims.Subject, ErrInvalidCredentials)
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for BANKER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
