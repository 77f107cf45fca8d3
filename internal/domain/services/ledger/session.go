package ledger

import (
	"context"
	"time"

	models "bookkeeper/internal/domain/models/ledger"
)

// SessionService exchanges credentials for a signed session token
type SessionService interface {
	Login(ctx context.Context, req *LoginRequest) (*Session, error)

	// Register creates a user with a bcrypt-hashed password
	Register(ctx context.Context, username, password string) (*models.User, error)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is returned to the client after a successful login
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userId"`
}
