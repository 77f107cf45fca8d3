package ledger

import (
	"context"
	"time"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles bank transaction business logic
type TransactionService interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, userID uuid.UUID, id int64) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID uuid.UUID, id int64, req *UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID uuid.UUID, id int64) error
}

type CreateTransactionRequest struct {
	OperationalYearID int64           `json:"operationalYearId"`
	BankAccountID     int64           `json:"bankAccountId"`
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Saldo             decimal.Decimal `json:"saldo"`
	Text              string          `json:"text"`
}

type UpdateTransactionRequest struct {
	OperationalYearID *int64           `json:"operationalYearId,omitempty"`
	BankAccountID     *int64           `json:"bankAccountId,omitempty"`
	Date              *time.Time       `json:"date,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Saldo             *decimal.Decimal `json:"saldo,omitempty"`
	Text              *string          `json:"text,omitempty"`
}
