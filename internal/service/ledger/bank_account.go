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
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// bankAccountService implements the BankAccountService interface
type bankAccountService struct {
	bankAccountRepo ledgerRepo.BankAccountRepository
	logger          *slog.Logger
}

// NewBankAccountService creates a new bank account service
func NewBankAccountService(bankAccountRepo ledgerRepo.BankAccountRepository, logger *slog.Logger) ledgerSvc.BankAccountService {
	return &bankAccountService{
		bankAccountRepo: bankAccountRepo,
		logger:          logger,
	}
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]models.BankAccount, error) {
	return s.bankAccountRepo.ListByUser(ctx, userID)
}

func (s *bankAccountService) CreateBankAccount(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateBankAccountRequest) (*models.BankAccount, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, notBlank, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Bank, validation.Required, notBlank, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.ClearingNumber, validation.Required, validation.Min(0)),
		validation.Field(&req.AccountNumber, validation.Required, validation.Min(int64(0))),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	bankAccount := &models.BankAccount{
		UserID:         userID,
		Name:           strings.TrimSpace(req.Name),
		Bank:           strings.TrimSpace(req.Bank),
		ClearingNumber: req.ClearingNumber,
		AccountNumber:  req.AccountNumber,
	}

	if err := s.bankAccountRepo.Create(ctx, bankAccount); err != nil {
		return nil, err
	}

	s.logger.Info("bank account created", "id", bankAccount.ID, "user_id", userID)
	return bankAccount, nil
}

func (s *bankAccountService) GetBankAccount(ctx context.Context, userID uuid.UUID, id int64) (*models.BankAccount, error) {
	return s.bankAccountRepo.GetByID(ctx, id, userID)
}

func (s *bankAccountService) UpdateBankAccount(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateBankAccountRequest) (*models.BankAccount, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, notBlank, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Bank, validation.NilOrNotEmpty, notBlank, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.ClearingNumber, validation.Min(0)),
		validation.Field(&req.AccountNumber, validation.Min(int64(0))),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	bankAccount, err := s.bankAccountRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		bankAccount.Name = strings.TrimSpace(*req.Name)
	}
	if req.Bank != nil {
		bankAccount.Bank = strings.TrimSpace(*req.Bank)
	}
	if req.ClearingNumber != nil {
		bankAccount.ClearingNumber = *req.ClearingNumber
	}
	if req.AccountNumber != nil {
		bankAccount.AccountNumber = *req.AccountNumber
	}

	if err := s.bankAccountRepo.Update(ctx, bankAccount); err != nil {
		return nil, err
	}

	s.logger.Info("bank account updated", "id", id, "user_id", userID)
	return bankAccount, nil
}

func (s *bankAccountService) DeleteBankAccount(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.bankAccountRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("bank account deleted", "id", id, "user_id", userID)
	return nil
}
