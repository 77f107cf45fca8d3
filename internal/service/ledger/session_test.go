package ledger

import (
	"context"
	"testing"
	"time"

	"bookkeeper/internal/auth"
	"bookkeeper/internal/domain"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (ledgerSvc.SessionService, *auth.SessionTokens) {
	t.Helper()
	tokens, err := auth.NewSessionTokens("test-secret", time.Hour, discardLogger())
	require.NoError(t, err)
	return NewSessionService(newFakeUserRepo(), tokens, discardLogger()), tokens
}

func TestSession_RegisterAndLogin(t *testing.T) {
	svc, tokens := newSessionFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "anna", "correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	session, err := svc.Login(ctx, &ledgerSvc.LoginRequest{Username: "anna", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), session.UserID)

	claims, err := tokens.VerifyToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestSession_LoginFailuresLookAlike(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, "anna", "correct horse")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, &ledgerSvc.LoginRequest{Username: "anna", Password: "battery staple"})
	_, unknownUser := svc.Login(ctx, &ledgerSvc.LoginRequest{Username: "bertil", Password: "battery staple"})

	assert.ErrorIs(t, wrongPassword, domain.ErrUnauthorized)
	assert.ErrorIs(t, unknownUser, domain.ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestSession_RegisterValidation(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "anna", "short")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(ctx, "  ", "long enough")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(ctx, "anna", "long enough")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "anna", "long enough")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
