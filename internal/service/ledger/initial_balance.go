package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"
	"bookkeeper/internal/domain/services"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// initialBalanceService implements the InitialBalanceService interface
type initialBalanceService struct {
	accountInitialRepo     ledgerRepo.AccountInitialRepository
	bankAccountInitialRepo ledgerRepo.BankAccountInitialRepository
	authorizer             services.ResourceAuthorizer
	logger                 *slog.Logger
}

// NewInitialBalanceService creates a new initial balance service
func NewInitialBalanceService(
	accountInitialRepo ledgerRepo.AccountInitialRepository,
	bankAccountInitialRepo ledgerRepo.BankAccountInitialRepository,
	authorizer services.ResourceAuthorizer,
	logger *slog.Logger,
) ledgerSvc.InitialBalanceService {
	return &initialBalanceService{
		accountInitialRepo:     accountInitialRepo,
		bankAccountInitialRepo: bankAccountInitialRepo,
		authorizer:             authorizer,
		logger:                 logger,
	}
}

func (s *initialBalanceService) ListAccountInitials(ctx context.Context, userID uuid.UUID) ([]models.AccountInitial, error) {
	return s.accountInitialRepo.ListByUser(ctx, userID)
}

func (s *initialBalanceService) CreateAccountInitial(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateAccountInitialRequest) (*models.AccountInitial, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.AccountID, validation.Required),
		validation.Field(&req.OperationalYearID, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.authorizer.CanUseAccount(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}
	if err := s.authorizer.CanUseOperationalYear(ctx, userID, req.OperationalYearID); err != nil {
		return nil, err
	}

	initial := &models.AccountInitial{
		UserID:            userID,
		AccountID:         req.AccountID,
		OperationalYearID: req.OperationalYearID,
		InitialValue:      req.InitialValue,
	}
	if err := s.accountInitialRepo.Create(ctx, initial); err != nil {
		return nil, err
	}

	s.logger.Info("account initial created",
		"id", initial.ID,
		"account_id", initial.AccountID,
		"operational_year_id", initial.OperationalYearID,
	)
	return initial, nil
}

func (s *initialBalanceService) GetAccountInitial(ctx context.Context, userID uuid.UUID, id int64) (*models.AccountInitial, error) {
	return s.accountInitialRepo.GetByID(ctx, id, userID)
}

func (s *initialBalanceService) FindAccountInitial(ctx context.Context, userID uuid.UUID, yearID, accountID int64) (*models.AccountInitial, error) {
	return s.accountInitialRepo.GetByYearAndAccount(ctx, userID, yearID, accountID)
}

func (s *initialBalanceService) UpdateAccountInitial(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateAccountInitialRequest) (*models.AccountInitial, error) {
	initial, err := s.accountInitialRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil {
		if err := s.authorizer.CanUseAccount(ctx, userID, *req.AccountID); err != nil {
			return nil, err
		}
		initial.AccountID = *req.AccountID
	}
	if req.OperationalYearID != nil {
		if err := s.authorizer.CanUseOperationalYear(ctx, userID, *req.OperationalYearID); err != nil {
			return nil, err
		}
		initial.OperationalYearID = *req.OperationalYearID
	}
	if req.InitialValue != nil {
		initial.InitialValue = *req.InitialValue
	}

	if err := s.accountInitialRepo.Update(ctx, initial); err != nil {
		return nil, err
	}

	s.logger.Info("account initial updated", "id", id, "user_id", userID)
	return initial, nil
}

func (s *initialBalanceService) DeleteAccountInitial(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.accountInitialRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("account initial deleted", "id", id, "user_id", userID)
	return nil
}

func (s *initialBalanceService) ListBankAccountInitials(ctx context.Context, userID uuid.UUID) ([]models.BankAccountInitial, error) {
	return s.bankAccountInitialRepo.ListByUser(ctx, userID)
}

func (s *initialBalanceService) CreateBankAccountInitial(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateBankAccountInitialRequest) (*models.BankAccountInitial, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.BankAccountID, validation.Required),
		validation.Field(&req.OperationalYearID, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.authorizer.CanUseBankAccount(ctx, userID, req.BankAccountID); err != nil {
		return nil, err
	}
	if err := s.authorizer.CanUseOperationalYear(ctx, userID, req.OperationalYearID); err != nil {
		return nil, err
	}

	initial := &models.BankAccountInitial{
		UserID:            userID,
		BankAccountID:     req.BankAccountID,
		OperationalYearID: req.OperationalYearID,
		InitialValue:      req.InitialValue,
	}
	if err := s.bankAccountInitialRepo.Create(ctx, initial); err != nil {
		return nil, err
	}

	s.logger.Info("bank account initial created",
		"id", initial.ID,
		"bank_account_id", initial.BankAccountID,
		"operational_year_id", initial.OperationalYearID,
	)
	return initial, nil
}

func (s *initialBalanceService) GetBankAccountInitial(ctx context.Context, userID uuid.UUID, id int64) (*models.BankAccountInitial, error) {
	return s.bankAccountInitialRepo.GetByID(ctx, id, userID)
}

func (s *initialBalanceService) FindBankAccountInitial(ctx context.Context, userID uuid.UUID, yearID, bankAccountID int64) (*models.BankAccountInitial, error) {
	return s.bankAccountInitialRepo.GetByYearAndBankAccount(ctx, userID, yearID, bankAccountID)
}

func (s *initialBalanceService) UpdateBankAccountInitial(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateBankAccountInitialRequest) (*models.BankAccountInitial, error) {
	initial, err := s.bankAccountInitialRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.BankAccountID != nil {
		if err := s.authorizer.CanUseBankAccount(ctx, userID, *req.BankAccountID); err != nil {
			return nil, err
		}
		initial.BankAccountID = *req.BankAccountID
	}
	if req.OperationalYearID != nil {
		if err := s.authorizer.CanUseOperationalYear(ctx, userID, *req.OperationalYearID); err != nil {
			return nil, err
		}
		initial.OperationalYearID = *req.OperationalYearID
	}
	if req.InitialValue != nil {
		initial.InitialValue = *req.InitialValue
	}

	if err := s.bankAccountInitialRepo.Update(ctx, initial); err != nil {
		return nil, err
	}

	s.logger.Info("bank account initial updated", "id", id, "user_id", userID)
	return initial, nil
}

func (s *initialBalanceService) DeleteBankAccountInitial(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.bankAccountInitialRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("bank account initial deleted", "id", id, "user_id", userID)
	return nil
}
