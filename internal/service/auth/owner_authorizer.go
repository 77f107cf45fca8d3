package auth

import (
	"context"
	"errors"
	"fmt"

	"bookkeeper/internal/domain"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"

	"github.com/google/uuid"
)

// OwnerBasedAuthorizer implements ResourceAuthorizer using ownership checks.
// Every repository lookup is already scoped by user, so a record owned by
// someone else looks exactly like a missing one.
type OwnerBasedAuthorizer struct {
	accountRepo      ledgerRepo.AccountRepository
	bankAccountRepo  ledgerRepo.BankAccountRepository
	yearRepo         ledgerRepo.OperationalYearRepository
	transactionRepo  ledgerRepo.TransactionRepository
	verificationRepo ledgerRepo.VerificationRepository
}

// NewOwnerBasedAuthorizer creates a new ownership-based authorizer
func NewOwnerBasedAuthorizer(
	accountRepo ledgerRepo.AccountRepository,
	bankAccountRepo ledgerRepo.BankAccountRepository,
	yearRepo ledgerRepo.OperationalYearRepository,
	transactionRepo ledgerRepo.TransactionRepository,
	verificationRepo ledgerRepo.VerificationRepository,
) *OwnerBasedAuthorizer {
	return &OwnerBasedAuthorizer{
		accountRepo:      accountRepo,
		bankAccountRepo:  bankAccountRepo,
		yearRepo:         yearRepo,
		transactionRepo:  transactionRepo,
		verificationRepo: verificationRepo,
	}
}

// CanUseAccount checks if user owns the account
func (a *OwnerBasedAuthorizer) CanUseAccount(ctx context.Context, userID uuid.UUID, accountID int64) error {
	_, err := a.accountRepo.GetByID(ctx, accountID, userID)
	return checkOwned("account", accountID, err)
}

// CanUseBankAccount checks if user owns the bank account
func (a *OwnerBasedAuthorizer) CanUseBankAccount(ctx context.Context, userID uuid.UUID, bankAccountID int64) error {
	_, err := a.bankAccountRepo.GetByID(ctx, bankAccountID, userID)
	return checkOwned("bank account", bankAccountID, err)
}

// CanUseOperationalYear checks if user owns the operational year
func (a *OwnerBasedAuthorizer) CanUseOperationalYear(ctx context.Context, userID uuid.UUID, yearID int64) error {
	_, err := a.yearRepo.GetByID(ctx, yearID, userID)
	return checkOwned("operational year", yearID, err)
}

// CanUseTransaction checks if user owns the transaction
func (a *OwnerBasedAuthorizer) CanUseTransaction(ctx context.Context, userID uuid.UUID, transactionID int64) error {
	_, err := a.transactionRepo.GetByID(ctx, transactionID, userID)
	return checkOwned("transaction", transactionID, err)
}

// CanUseVerification checks if user owns the verification
func (a *OwnerBasedAuthorizer) CanUseVerification(ctx context.Context, userID uuid.UUID, verificationID int64) error {
	_, err := a.verificationRepo.GetByID(ctx, verificationID, userID)
	return checkOwned("verification", verificationID, err)
}

func checkOwned(resource string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ValidationError{Code: domain.CodeInvalidReference, Message: fmt.Sprintf("invalid %s %d", resource, id)}
	}
	return fmt.Errorf("check %s access: %w", resource, err)
}
