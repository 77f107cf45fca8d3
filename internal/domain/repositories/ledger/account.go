package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// AccountRepository defines data access operations for the chart of accounts.
// Every query is scoped by the owning user.
type AccountRepository interface {
	// Create inserts the account and fills in ID and timestamps
	Create(ctx context.Context, account *models.Account) error

	// GetByID retrieves an account owned by userID
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Account, error)

	// ListByUser returns the user's complete flat account list, ordered by ID
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error)

	// Update writes name, description and parent in a single statement
	Update(ctx context.Context, account *models.Account) error

	// Delete removes an account; fails with ErrConflict while it is referenced
	Delete(ctx context.Context, id int64, userID uuid.UUID) error

	// LockHierarchy takes a transaction-scoped lock on the user's account
	// tree. Must be called inside a transaction.
	LockHierarchy(ctx context.Context, userID uuid.UUID) error
}
