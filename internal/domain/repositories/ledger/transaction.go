package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// TransactionRepository defines data access operations for bank transactions
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Transaction, error)
	// ListByUser returns transactions ordered by date, then ID
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}
