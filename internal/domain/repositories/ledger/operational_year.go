package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// OperationalYearRepository defines data access operations for operational years
type OperationalYearRepository interface {
	Create(ctx context.Context, year *models.OperationalYear) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.OperationalYear, error)
	// ListByUser returns years ordered by start date
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.OperationalYear, error)
	Update(ctx context.Context, year *models.OperationalYear) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}
