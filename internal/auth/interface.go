package auth

import (
	"time"

	models "bookkeeper/internal/domain/models/ledger"
)

// TokenVerifier validates session tokens presented as Bearer credentials.
// Keeping the middleware on this interface lets deployments swap the HMAC
// session secret for an external identity provider's JWKS.
type TokenVerifier interface {
	// VerifyToken validates a token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.SessionClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

// TokenIssuer signs session tokens after a successful login.
type TokenIssuer interface {
	IssueToken(user *models.User) (token string, expiresAt time.Time, err error)
}
