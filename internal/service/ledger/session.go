package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bookkeeper/internal/auth"
	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = &domain.UnauthorizedError{Message: "invalid username or password"}

// sessionService implements the SessionService interface
type sessionService struct {
	userRepo ledgerRepo.UserRepository
	issuer   auth.TokenIssuer
	logger   *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(userRepo ledgerRepo.UserRepository, issuer auth.TokenIssuer, logger *slog.Logger) ledgerSvc.SessionService {
	return &sessionService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Login checks the password against the stored bcrypt hash and issues a token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *sessionService) Login(ctx context.Context, req *ledgerSvc.LoginRequest) (*ledgerSvc.Session, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login failed", "user_id", user.ID)
		return nil, errBadCredentials
	}

	token, expiresAt, err := s.issuer.IssueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session created", "user_id", user.ID)

	return &ledgerSvc.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID.String(),
	}, nil
}

// Register creates a user with a bcrypt-hashed password
func (s *sessionService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	err := validation.Errors{
		"username": validation.Validate(username, validation.Required, validation.Length(1, config.MaxNameLength)),
		"password": validation.Validate(password, validation.Required, validation.Length(config.MinPasswordLength, 72)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}
