package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// AccountInitialRepository defines data access operations for account opening balances
type AccountInitialRepository interface {
	Create(ctx context.Context, initial *models.AccountInitial) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.AccountInitial, error)

	// GetByYearAndAccount looks up the opening balance of one account in one year
	GetByYearAndAccount(ctx context.Context, userID uuid.UUID, yearID, accountID int64) (*models.AccountInitial, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AccountInitial, error)
	Update(ctx context.Context, initial *models.AccountInitial) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}

// BankAccountInitialRepository defines data access operations for bank account opening balances
type BankAccountInitialRepository interface {
	Create(ctx context.Context, initial *models.BankAccountInitial) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.BankAccountInitial, error)

	// GetByYearAndBankAccount looks up the opening balance of one bank account in one year
	GetByYearAndBankAccount(ctx context.Context, userID uuid.UUID, yearID, bankAccountID int64) (*models.BankAccountInitial, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BankAccountInitial, error)
	Update(ctx context.Context, initial *models.BankAccountInitial) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}
