package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "bookkeeper"

// SessionTokens issues and verifies HS256 session tokens signed with a shared secret.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewSessionTokens creates an HMAC token issuer/verifier.
func NewSessionTokens(secret string, ttl time.Duration, logger *slog.Logger) (*SessionTokens, error) {
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}

	return &SessionTokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}, nil
}

// IssueToken signs a token for the user that expires after the configured TTL.
func (s *SessionTokens) IssueToken(user *models.User) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: user.Username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// VerifyToken validates an HS256 token issued by this service.
func (s *SessionTokens) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		s.logger.Debug("session token rejected", "error", err)
		return nil, domain.ErrUnauthorized
	}

	if _, err := claims.GetUserID(); err != nil {
		s.logger.Debug("session token has invalid subject", "error", err)
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close is a no-op; the verifier holds no external resources.
func (s *SessionTokens) Close() error {
	return nil
}
