// Package auth handles admin login and session tokens.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for a malformed, expired or forged token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrDisabled is returned when no admin account is configured.
	ErrDisabled = errors.New("admin login is not configured")
)

const roleAdmin = "admin"

// Authenticator checks the single admin account and issues HS256 tokens.
type Authenticator struct {
	email        string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthenticator creates an authenticator. An empty email or hash disables
// login.
func NewAuthenticator(email, passwordHash, secret string, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Authenticator{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}
}

// Enabled reports whether an admin account is configured.
func (a *Authenticator) Enabled() bool {
	return a.email != "" && len(a.passwordHash) > 0 && len(a.secret) > 0
}

// Login verifies the credentials and returns a signed token.
func (a *Authenticator) Login(email, password string) (string, time.Time, error) {
	if !a.Enabled() {
		return "", time.Time{}, ErrDisabled
	}
	if strings.ToLower(strings.TrimSpace(email)) != a.email {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := jwt.MapClaims{
		"sub":  a.email,
		"role": roleAdmin,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify validates a token and returns its subject.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	if !a.Enabled() {
		return "", ErrDisabled
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != roleAdmin {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
