package ledger

import (
	"context"
	"fmt"
	"time"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"
	"bookkeeper/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	verificationColumns    = `id, user_id, name, description, date, created_at, updated_at`
	verificationRowColumns = `id, user_id, verification_id, account_id, operational_year_id, transaction_id, debit::text, credit::text, created_at, updated_at`
	attachmentColumns      = `id, user_id, verification_id, file_path, created_at, updated_at`
)

// PostgresVerificationRepository implements the VerificationRepository interface
type PostgresVerificationRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(config *postgres.RepositoryConfig) ledgerRepo.VerificationRepository {
	return &PostgresVerificationRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresVerificationRepository) Create(ctx context.Context, v *models.Verification) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Verifications)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		v.UserID, v.Name, v.Description, v.Date, time.Now(),
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return writeError("create", "verification", err)
	}

	return nil
}

func (r *PostgresVerificationRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Verification, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2`, verificationColumns, r.tables.Verifications)

	v, err := scanVerification(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("verification %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get verification: %w", err)
	}

	return v, nil
}

func (r *PostgresVerificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Verification, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 ORDER BY date, id`, verificationColumns, r.tables.Verifications)

	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}

	return collect(rows, scanVerification)
}

func (r *PostgresVerificationRepository) Update(ctx context.Context, v *models.Verification) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, date = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`, r.tables.Verifications)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		v.Name, v.Description, v.Date, time.Now(), v.ID, v.UserID,
	).Scan(&v.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("verification %d: %w", v.ID, domain.ErrNotFound)
		}
		return writeError("update", "verification", err)
	}

	return nil
}

// Delete removes the verification; its rows and attachments cascade
func (r *PostgresVerificationRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.Verifications, "verification", id, userID)
}

func scanVerification(row pgx.Row) (*models.Verification, error) {
	var v models.Verification
	if err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Description, &v.Date, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

// PostgresVerificationRowRepository implements the VerificationRowRepository interface
type PostgresVerificationRowRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewVerificationRowRepository creates a new verification row repository
func NewVerificationRowRepository(config *postgres.RepositoryConfig) ledgerRepo.VerificationRowRepository {
	return &PostgresVerificationRowRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresVerificationRowRepository) Create(ctx context.Context, row *models.VerificationRow) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, verification_id, account_id, operational_year_id, transaction_id, debit, credit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.VerificationRows)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		row.UserID,
		row.VerificationID,
		row.AccountID,
		row.OperationalYearID,
		row.TransactionID,
		row.Debit.String(),
		row.Credit.String(),
		time.Now(),
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return writeError("create", "verification row", err)
	}

	return nil
}

func (r *PostgresVerificationRowRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.VerificationRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2`, verificationRowColumns, r.tables.VerificationRows)

	row, err := scanVerificationRow(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("verification row %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get verification row: %w", err)
	}

	return row, nil
}

func (r *PostgresVerificationRowRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VerificationRow, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE user_id = $1 ORDER BY verification_id, id
	`, verificationRowColumns, r.tables.VerificationRows)

	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list verification rows: %w", err)
	}

	return collect(rows, scanVerificationRow)
}

func (r *PostgresVerificationRowRepository) Update(ctx context.Context, row *models.VerificationRow) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET verification_id = $1, account_id = $2, operational_year_id = $3, transaction_id = $4,
		    debit = $5::numeric, credit = $6::numeric, updated_at = $7
		WHERE id = $8 AND user_id = $9
		RETURNING updated_at
	`, r.tables.VerificationRows)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		row.VerificationID,
		row.AccountID,
		row.OperationalYearID,
		row.TransactionID,
		row.Debit.String(),
		row.Credit.String(),
		time.Now(),
		row.ID,
		row.UserID,
	).Scan(&row.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("verification row %d: %w", row.ID, domain.ErrNotFound)
		}
		return writeError("update", "verification row", err)
	}

	return nil
}

func (r *PostgresVerificationRowRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.VerificationRows, "verification_row", id, userID)
}

func scanVerificationRow(row pgx.Row) (*models.VerificationRow, error) {
	var v models.VerificationRow
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.VerificationID,
		&v.AccountID,
		&v.OperationalYearID,
		&v.TransactionID,
		&v.Debit,
		&v.Credit,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// PostgresVerificationAttachmentRepository implements the VerificationAttachmentRepository interface
type PostgresVerificationAttachmentRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewVerificationAttachmentRepository creates a new attachment repository
func NewVerificationAttachmentRepository(config *postgres.RepositoryConfig) ledgerRepo.VerificationAttachmentRepository {
	return &PostgresVerificationAttachmentRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresVerificationAttachmentRepository) Create(ctx context.Context, a *models.VerificationAttachment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, verification_id, file_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`, r.tables.VerificationAttachments)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		a.UserID, a.VerificationID, a.FilePath, time.Now(),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return writeError("create", "verification attachment", err)
	}

	return nil
}

func (r *PostgresVerificationAttachmentRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.VerificationAttachment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2`, attachmentColumns, r.tables.VerificationAttachments)

	a, err := scanAttachment(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("verification attachment %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get verification attachment: %w", err)
	}

	return a, nil
}

func (r *PostgresVerificationAttachmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VerificationAttachment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE user_id = $1 ORDER BY verification_id, id
	`, attachmentColumns, r.tables.VerificationAttachments)

	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list verification attachments: %w", err)
	}

	return collect(rows, scanAttachment)
}

func (r *PostgresVerificationAttachmentRepository) Update(ctx context.Context, a *models.VerificationAttachment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET verification_id = $1, file_path = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at
	`, r.tables.VerificationAttachments)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		a.VerificationID, a.FilePath, time.Now(), a.ID, a.UserID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("verification attachment %d: %w", a.ID, domain.ErrNotFound)
		}
		return writeError("update", "verification attachment", err)
	}

	return nil
}

func (r *PostgresVerificationAttachmentRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.VerificationAttachments, "verification_attachment", id, userID)
}

func scanAttachment(row pgx.Row) (*models.VerificationAttachment, error) {
	var a models.VerificationAttachment
	if err := row.Scan(&a.ID, &a.UserID, &a.VerificationID, &a.FilePath, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
