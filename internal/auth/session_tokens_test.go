package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(t *testing.T, secret string) *SessionTokens {
	t.Helper()
	tokens, err := NewSessionTokens(secret, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return tokens
}

func TestSessionTokens_RoundTrip(t *testing.T) {
	tokens := newTestTokens(t, "secret")
	user := &models.User{ID: uuid.New(), Username: "anna"}

	token, expiresAt, err := tokens.IssueToken(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)

	id, err := claims.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, "anna", claims.Username)
}

func TestSessionTokens_RejectsOtherSecret(t *testing.T) {
	token, _, err := newTestTokens(t, "one").IssueToken(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = newTestTokens(t, "two").VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionTokens_RejectsExpired(t *testing.T) {
	tokens := newTestTokens(t, "secret")
	token, _, err := tokens.IssueToken(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	tokens.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = tokens.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionTokens_RejectsNonUUIDSubject(t *testing.T) {
	tokens := newTestTokens(t, "secret")
	claims := &models.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		Issuer:    sessionIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tokens.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionTokens_RejectsUnsignedToken(t *testing.T) {
	tokens := newTestTokens(t, "secret")
	claims := &models.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    sessionIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewSessionTokens_RequiresSecret(t *testing.T) {
	_, err := NewSessionTokens("", time.Hour, slog.Default())
	assert.Error(t, err)
}
