package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthenticator("Chef@Example.com", string(hash), "signing-key", time.Hour)
}

func TestLogin(t *testing.T) {
	a := newTestAuthenticator(t)

	token, expiresAt, err := a.Login(" chef@example.com ", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	sub, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "chef@example.com", sub)
}

func TestLogin_Rejects(t *testing.T) {
	a := newTestAuthenticator(t)

	_, _, err := a.Login("chef@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = a.Login("other@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = NewAuthenticator("", "", "", 0).Login("a", "b")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestVerify_Rejects(t *testing.T) {
	a := newTestAuthenticator(t)

	a.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := a.Login("chef@example.com", "s3cret")
	require.NoError(t, err)
	a.now = time.Now

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "chef@example.com", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-key"))
	require.NoError(t, err)

	notAdmin, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "chef@example.com", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("signing-key"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":   expired,
		"forged":    forged,
		"not admin": notAdmin,
		"garbage":   "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := a.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")))

	_, err = HashPassword("")
	assert.Error(t, err)
}
