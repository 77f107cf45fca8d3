package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitialBalanceService handles opening balances of accounts and bank
// accounts per operational year
type InitialBalanceService interface {
	ListAccountInitials(ctx context.Context, userID uuid.UUID) ([]models.AccountInitial, error)
	CreateAccountInitial(ctx context.Context, userID uuid.UUID, req *CreateAccountInitialRequest) (*models.AccountInitial, error)
	GetAccountInitial(ctx context.Context, userID uuid.UUID, id int64) (*models.AccountInitial, error)
	FindAccountInitial(ctx context.Context, userID uuid.UUID, yearID, accountID int64) (*models.AccountInitial, error)
	UpdateAccountInitial(ctx context.Context, userID uuid.UUID, id int64, req *UpdateAccountInitialRequest) (*models.AccountInitial, error)
	DeleteAccountInitial(ctx context.Context, userID uuid.UUID, id int64) error

	ListBankAccountInitials(ctx context.Context, userID uuid.UUID) ([]models.BankAccountInitial, error)
	CreateBankAccountInitial(ctx context.Context, userID uuid.UUID, req *CreateBankAccountInitialRequest) (*models.BankAccountInitial, error)
	GetBankAccountInitial(ctx context.Context, userID uuid.UUID, id int64) (*models.BankAccountInitial, error)
	FindBankAccountInitial(ctx context.Context, userID uuid.UUID, yearID, bankAccountID int64) (*models.BankAccountInitial, error)
	UpdateBankAccountInitial(ctx context.Context, userID uuid.UUID, id int64, req *UpdateBankAccountInitialRequest) (*models.BankAccountInitial, error)
	DeleteBankAccountInitial(ctx context.Context, userID uuid.UUID, id int64) error
}

type CreateAccountInitialRequest struct {
	AccountID         int64           `json:"accountId"`
	OperationalYearID int64           `json:"operationalYearId"`
	InitialValue      decimal.Decimal `json:"initialValue"`
}

type UpdateAccountInitialRequest struct {
	AccountID         *int64           `json:"accountId,omitempty"`
	OperationalYearID *int64           `json:"operationalYearId,omitempty"`
	InitialValue      *decimal.Decimal `json:"initialValue,omitempty"`
}

type CreateBankAccountInitialRequest struct {
	BankAccountID     int64           `json:"bankAccountId"`
	OperationalYearID int64           `json:"operationalYearId"`
	InitialValue      decimal.Decimal `json:"initialValue"`
}

type UpdateBankAccountInitialRequest struct {
	BankAccountID     *int64           `json:"bankAccountId,omitempty"`
	OperationalYearID *int64           `json:"operationalYearId,omitempty"`
	InitialValue      *decimal.Decimal `json:"initialValue,omitempty"`
}
