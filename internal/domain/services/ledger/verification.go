package ledger

import (
	"context"
	"time"

	models "bookkeeper/internal/domain/models/ledger"
	"bookkeeper/internal/httputil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VerificationService handles verifications together with their rows and
// attachments
type VerificationService interface {
	ListVerifications(ctx context.Context, userID uuid.UUID) ([]models.Verification, error)
	CreateVerification(ctx context.Context, userID uuid.UUID, req *CreateVerificationRequest) (*models.Verification, error)
	GetVerification(ctx context.Context, userID uuid.UUID, id int64) (*models.Verification, error)
	UpdateVerification(ctx context.Context, userID uuid.UUID, id int64, req *UpdateVerificationRequest) (*models.Verification, error)
	DeleteVerification(ctx context.Context, userID uuid.UUID, id int64) error

	ListRows(ctx context.Context, userID uuid.UUID) ([]models.VerificationRow, error)
	CreateRow(ctx context.Context, userID uuid.UUID, req *CreateVerificationRowRequest) (*models.VerificationRow, error)
	GetRow(ctx context.Context, userID uuid.UUID, id int64) (*models.VerificationRow, error)
	UpdateRow(ctx context.Context, userID uuid.UUID, id int64, req *UpdateVerificationRowRequest) (*models.VerificationRow, error)
	DeleteRow(ctx context.Context, userID uuid.UUID, id int64) error

	ListAttachments(ctx context.Context, userID uuid.UUID) ([]models.VerificationAttachment, error)
	CreateAttachment(ctx context.Context, userID uuid.UUID, req *CreateAttachmentRequest) (*models.VerificationAttachment, error)
	GetAttachment(ctx context.Context, userID uuid.UUID, id int64) (*models.VerificationAttachment, error)
	UpdateAttachment(ctx context.Context, userID uuid.UUID, id int64, req *UpdateAttachmentRequest) (*models.VerificationAttachment, error)
	DeleteAttachment(ctx context.Context, userID uuid.UUID, id int64) error
}

type CreateVerificationRequest struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

type UpdateVerificationRequest struct {
	Name        *string                 `json:"name,omitempty"`
	Description httputil.OptionalString `json:"description"`
	Date        *time.Time              `json:"date,omitempty"`
}

type CreateVerificationRowRequest struct {
	VerificationID    int64            `json:"verificationId"`
	AccountID         int64            `json:"accountId"`
	OperationalYearID int64            `json:"operationalYearId"`
	TransactionID     *int64           `json:"transactionId,omitempty"`
	Debit             *decimal.Decimal `json:"debit,omitempty"`
	Credit            *decimal.Decimal `json:"credit,omitempty"`
}

type UpdateVerificationRowRequest struct {
	VerificationID    *int64                 `json:"verificationId,omitempty"`
	AccountID         *int64                 `json:"accountId,omitempty"`
	OperationalYearID *int64                 `json:"operationalYearId,omitempty"`
	TransactionID     httputil.OptionalInt64 `json:"transactionId"`
	Debit             *decimal.Decimal       `json:"debit,omitempty"`
	Credit            *decimal.Decimal       `json:"credit,omitempty"`
}

type CreateAttachmentRequest struct {
	VerificationID int64  `json:"verificationId"`
	FilePath       string `json:"filePath"`
}

type UpdateAttachmentRequest struct {
	VerificationID *int64  `json:"verificationId,omitempty"`
	FilePath       *string `json:"filePath,omitempty"`
}
