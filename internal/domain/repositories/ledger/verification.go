package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"

	"github.com/google/uuid"
)

// VerificationRepository defines data access operations for verifications
type VerificationRepository interface {
	Create(ctx context.Context, verification *models.Verification) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Verification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Verification, error)
	Update(ctx context.Context, verification *models.Verification) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}

// VerificationRowRepository defines data access operations for verification rows
type VerificationRowRepository interface {
	Create(ctx context.Context, row *models.VerificationRow) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.VerificationRow, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VerificationRow, error)
	Update(ctx context.Context, row *models.VerificationRow) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}

// VerificationAttachmentRepository defines data access operations for verification attachments
type VerificationAttachmentRepository interface {
	Create(ctx context.Context, attachment *models.VerificationAttachment) error
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.VerificationAttachment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VerificationAttachment, error)
	Update(ctx context.Context, attachment *models.VerificationAttachment) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}
