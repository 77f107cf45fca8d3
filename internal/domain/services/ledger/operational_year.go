package ledger

import (
	"context"
	"time"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// OperationalYearService handles fiscal year business logic
type OperationalYearService interface {
	ListOperationalYears(ctx context.Context, userID uuid.UUID) ([]models.OperationalYear, error)
	CreateOperationalYear(ctx context.Context, userID uuid.UUID, req *CreateOperationalYearRequest) (*models.OperationalYear, error)
	GetOperationalYear(ctx context.Context, userID uuid.UUID, id int64) (*models.OperationalYear, error)
	UpdateOperationalYear(ctx context.Context, userID uuid.UUID, id int64, req *UpdateOperationalYearRequest) (*models.OperationalYear, error)
	DeleteOperationalYear(ctx context.Context, userID uuid.UUID, id int64) error
}

type CreateOperationalYearRequest struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type UpdateOperationalYearRequest struct {
	Name      *string    `json:"name,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}
