package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"
	"bookkeeper/internal/domain/services"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	transactionRepo ledgerRepo.TransactionRepository
	authorizer      services.ResourceAuthorizer
	logger          *slog.Logger
}

// NewTransactionService creates a new bank transaction service
func NewTransactionService(
	transactionRepo ledgerRepo.TransactionRepository,
	authorizer services.ResourceAuthorizer,
	logger *slog.Logger,
) ledgerSvc.TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		authorizer:      authorizer,
		logger:          logger,
	}
}

func (s *transactionService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return s.transactionRepo.ListByUser(ctx, userID)
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateTransactionRequest) (*models.Transaction, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.OperationalYearID, validation.Required),
		validation.Field(&req.BankAccountID, validation.Required),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Text, validation.Length(0, config.MaxTransactionTextLength)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.authorizer.CanUseOperationalYear(ctx, userID, req.OperationalYearID); err != nil {
		return nil, err
	}
	if err := s.authorizer.CanUseBankAccount(ctx, userID, req.BankAccountID); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:            userID,
		OperationalYearID: req.OperationalYearID,
		BankAccountID:     req.BankAccountID,
		Date:              req.Date,
		Amount:            req.Amount,
		Saldo:             req.Saldo,
		Text:              strings.TrimSpace(req.Text),
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("transaction created",
		"id", tx.ID,
		"bank_account_id", tx.BankAccountID,
		"amount", tx.Amount.String(),
	)
	return tx, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID uuid.UUID, id int64) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id, userID)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateTransactionRequest) (*models.Transaction, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Text, validation.Length(0, config.MaxTransactionTextLength)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	tx, err := s.transactionRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.OperationalYearID != nil {
		if err := s.authorizer.CanUseOperationalYear(ctx, userID, *req.OperationalYearID); err != nil {
			return nil, err
		}
		tx.OperationalYearID = *req.OperationalYearID
	}
	if req.BankAccountID != nil {
		if err := s.authorizer.CanUseBankAccount(ctx, userID, *req.BankAccountID); err != nil {
			return nil, err
		}
		tx.BankAccountID = *req.BankAccountID
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Saldo != nil {
		tx.Saldo = *req.Saldo
	}
	if req.Text != nil {
		tx.Text = strings.TrimSpace(*req.Text)
	}

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("transaction updated", "id", id, "user_id", userID)
	return tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.transactionRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("transaction deleted", "id", id, "user_id", userID)
	return nil
}
