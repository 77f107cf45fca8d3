package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// BankAccountService handles bank account business logic
type BankAccountService interface {
	ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]models.BankAccount, error)
	CreateBankAccount(ctx context.Context, userID uuid.UUID, req *CreateBankAccountRequest) (*models.BankAccount, error)
	GetBankAccount(ctx context.Context, userID uuid.UUID, id int64) (*models.BankAccount, error)
	UpdateBankAccount(ctx context.Context, userID uuid.UUID, id int64, req *UpdateBankAccountRequest) (*models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, userID uuid.UUID, id int64) error
}

type CreateBankAccountRequest struct {
	Name           string `json:"name"`
	Bank           string `json:"bank"`
	ClearingNumber int    `json:"clearingNumber"`
	AccountNumber  int64  `json:"accountNumber"`
}

type UpdateBankAccountRequest struct {
	Name           *string `json:"name,omitempty"`
	Bank           *string `json:"bank,omitempty"`
	ClearingNumber *int    `json:"clearingNumber,omitempty"`
	AccountNumber  *int64  `json:"accountNumber,omitempty"`
}
