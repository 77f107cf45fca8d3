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
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var errYearRange = errors.New("startDate must not be after endDate")

// operationalYearService implements the OperationalYearService interface
type operationalYearService struct {
	yearRepo ledgerRepo.OperationalYearRepository
	logger   *slog.Logger
}

// NewOperationalYearService creates a new operational year service
func NewOperationalYearService(yearRepo ledgerRepo.OperationalYearRepository, logger *slog.Logger) ledgerSvc.OperationalYearService {
	return &operationalYearService{
		yearRepo: yearRepo,
		logger:   logger,
	}
}

func (s *operationalYearService) ListOperationalYears(ctx context.Context, userID uuid.UUID) ([]models.OperationalYear, error) {
	return s.yearRepo.ListByUser(ctx, userID)
}

func (s *operationalYearService) CreateOperationalYear(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateOperationalYearRequest) (*models.OperationalYear, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, notBlank, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	year := &models.OperationalYear{
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if year.StartDate.After(year.EndDate) {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, errYearRange)
	}

	if err := s.yearRepo.Create(ctx, year); err != nil {
		return nil, err
	}

	s.logger.Info("operational year created", "id", year.ID, "name", year.Name, "user_id", userID)
	return year, nil
}

func (s *operationalYearService) GetOperationalYear(ctx context.Context, userID uuid.UUID, id int64) (*models.OperationalYear, error) {
	return s.yearRepo.GetByID(ctx, id, userID)
}

func (s *operationalYearService) UpdateOperationalYear(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateOperationalYearRequest) (*models.OperationalYear, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, notBlank, validation.Length(1, config.MaxNameLength)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	year, err := s.yearRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		year.Name = strings.TrimSpace(*req.Name)
	}
	if req.StartDate != nil {
		year.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		year.EndDate = *req.EndDate
	}
	if year.StartDate.After(year.EndDate) {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, errYearRange)
	}

	if err := s.yearRepo.Update(ctx, year); err != nil {
		return nil, err
	}

	s.logger.Info("operational year updated", "id", id, "user_id", userID)
	return year, nil
}

func (s *operationalYearService) DeleteOperationalYear(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.yearRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("operational year deleted", "id", id, "user_id", userID)
	return nil
}
