package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// BankAccountRepository defines data access operations for bank accounts
type BankAccountRepository interface {
	Create(ctx context.Context, bankAccount *models.BankAccount) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.BankAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BankAccount, error)
	Update(ctx context.Context, bankAccount *models.BankAccount) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}
