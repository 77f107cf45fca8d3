package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"
	"bookkeeper/internal/domain/services"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errNegativeAmount = errors.New("debit and credit must not be negative")
	errEmptyRow       = errors.New("a row needs a debit or a credit")
)

// verificationService implements the VerificationService interface
type verificationService struct {
	verificationRepo ledgerRepo.VerificationRepository
	rowRepo          ledgerRepo.VerificationRowRepository
	attachmentRepo   ledgerRepo.VerificationAttachmentRepository
	authorizer       services.ResourceAuthorizer
	logger           *slog.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	verificationRepo ledgerRepo.VerificationRepository,
	rowRepo ledgerRepo.VerificationRowRepository,
	attachmentRepo ledgerRepo.VerificationAttachmentRepository,
	authorizer services.ResourceAuthorizer,
	logger *slog.Logger,
) ledgerSvc.VerificationService {
	return &verificationService{
		verificationRepo: verificationRepo,
		rowRepo:          rowRepo,
		attachmentRepo:   attachmentRepo,
		authorizer:       authorizer,
		logger:           logger,
	}
}

func (s *verificationService) ListVerifications(ctx context.Context, userID uuid.UUID) ([]models.Verification, error) {
	return s.verificationRepo.ListByUser(ctx, userID)
}

func (s *verificationService) CreateVerification(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateVerificationRequest) (*models.Verification, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, notBlank, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&req.Date, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	v := &models.Verification{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.verificationRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("verification created", "id", v.ID, "user_id", userID)
	return v, nil
}

func (s *verificationService) GetVerification(ctx context.Context, userID uuid.UUID, id int64) (*models.Verification, error) {
	return s.verificationRepo.GetByID(ctx, id, userID)
}

func (s *verificationService) UpdateVerification(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateVerificationRequest) (*models.Verification, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, notBlank, validation.Length(1, config.MaxNameLength)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if d := req.Description.Value; d != nil && len(*d) > config.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description: the length must be no more than %d", domain.ErrValidation, config.MaxDescriptionLength)
	}

	v, err := s.verificationRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = strings.TrimSpace(*req.Name)
	}
	v.Description = req.Description.Or(v.Description)
	if req.Date != nil {
		v.Date = *req.Date
	}

	if err := s.verificationRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("verification updated", "id", id, "user_id", userID)
	return v, nil
}

// DeleteVerification deletes the verification together with its rows and attachments
func (s *verificationService) DeleteVerification(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.verificationRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("verification deleted", "id", id, "user_id", userID)
	return nil
}

func (s *verificationService) ListRows(ctx context.Context, userID uuid.UUID) ([]models.VerificationRow, error) {
	return s.rowRepo.ListByUser(ctx, userID)
}

func (s *verificationService) CreateRow(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateVerificationRowRequest) (*models.VerificationRow, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.VerificationID, validation.Required),
		validation.Field(&req.AccountID, validation.Required),
		validation.Field(&req.OperationalYearID, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	row := &models.VerificationRow{
		UserID:            userID,
		VerificationID:    req.VerificationID,
		AccountID:         req.AccountID,
		OperationalYearID: req.OperationalYearID,
		TransactionID:     req.TransactionID,
		Debit:             valueOrZero(req.Debit),
		Credit:            valueOrZero(req.Credit),
	}
	if err := validateAmounts(row.Debit, row.Credit); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.authorizeRow(ctx, userID, row); err != nil {
		return nil, err
	}

	if err := s.rowRepo.Create(ctx, row); err != nil {
		return nil, err
	}

	s.logger.Info("verification row created",
		"id", row.ID,
		"verification_id", row.VerificationID,
		"account_id", row.AccountID,
	)
	return row, nil
}

func (s *verificationService) GetRow(ctx context.Context, userID uuid.UUID, id int64) (*models.VerificationRow, error) {
	return s.rowRepo.GetByID(ctx, id, userID)
}

func (s *verificationService) UpdateRow(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateVerificationRowRequest) (*models.VerificationRow, error) {
	row, err := s.rowRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.VerificationID != nil {
		row.VerificationID = *req.VerificationID
	}
	if req.AccountID != nil {
		row.AccountID = *req.AccountID
	}
	if req.OperationalYearID != nil {
		row.OperationalYearID = *req.OperationalYearID
	}
	row.TransactionID = req.TransactionID.Or(row.TransactionID)
	if req.Debit != nil {
		row.Debit = *req.Debit
	}
	if req.Credit != nil {
		row.Credit = *req.Credit
	}

	if err := validateAmounts(row.Debit, row.Credit); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.authorizeRow(ctx, userID, row); err != nil {
		return nil, err
	}

	if err := s.rowRepo.Update(ctx, row); err != nil {
		return nil, err
	}

	s.logger.Info("verification row updated", "id", id, "user_id", userID)
	return row, nil
}

func (s *verificationService) DeleteRow(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.rowRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("verification row deleted", "id", id, "user_id", userID)
	return nil
}

func (s *verificationService) ListAttachments(ctx context.Context, userID uuid.UUID) ([]models.VerificationAttachment, error) {
	return s.attachmentRepo.ListByUser(ctx, userID)
}

func (s *verificationService) CreateAttachment(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateAttachmentRequest) (*models.VerificationAttachment, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.VerificationID, validation.Required),
		validation.Field(&req.FilePath, validation.Required, notBlank, validation.Length(1, config.MaxFilePathLength)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.authorizer.CanUseVerification(ctx, userID, req.VerificationID); err != nil {
		return nil, err
	}

	a := &models.VerificationAttachment{
		UserID:         userID,
		VerificationID: req.VerificationID,
		FilePath:       strings.TrimSpace(req.FilePath),
	}
	if err := s.attachmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("verification attachment created", "id", a.ID, "verification_id", a.VerificationID)
	return a, nil
}

func (s *verificationService) GetAttachment(ctx context.Context, userID uuid.UUID, id int64) (*models.VerificationAttachment, error) {
	return s.attachmentRepo.GetByID(ctx, id, userID)
}

func (s *verificationService) UpdateAttachment(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateAttachmentRequest) (*models.VerificationAttachment, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.FilePath, validation.NilOrNotEmpty, notBlank, validation.Length(1, config.MaxFilePathLength)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	a, err := s.attachmentRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.VerificationID != nil {
		if err := s.authorizer.CanUseVerification(ctx, userID, *req.VerificationID); err != nil {
			return nil, err
		}
		a.VerificationID = *req.VerificationID
	}
	if req.FilePath != nil {
		a.FilePath = strings.TrimSpace(*req.FilePath)
	}

	if err := s.attachmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("verification attachment updated", "id", id, "user_id", userID)
	return a, nil
}

func (s *verificationService) DeleteAttachment(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.attachmentRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("verification attachment deleted", "id", id, "user_id", userID)
	return nil
}

// authorizeRow checks every record the row references belongs to the user
func (s *verificationService) authorizeRow(ctx context.Context, userID uuid.UUID, row *models.VerificationRow) error {
	if err := s.authorizer.CanUseVerification(ctx, userID, row.VerificationID); err != nil {
		return err
	}
	if err := s.authorizer.CanUseAccount(ctx, userID, row.AccountID); err != nil {
		return err
	}
	if err := s.authorizer.CanUseOperationalYear(ctx, userID, row.OperationalYearID); err != nil {
		return err
	}
	if row.TransactionID != nil {
		return s.authorizer.CanUseTransaction(ctx, userID, *row.TransactionID)
	}
	return nil
}

func validateAmounts(debit, credit decimal.Decimal) error {
	if debit.IsNegative() || credit.IsNegative() {
		return errNegativeAmount
	}
	if debit.IsZero() && credit.IsZero() {
		return errEmptyRow
	}
	return nil
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
