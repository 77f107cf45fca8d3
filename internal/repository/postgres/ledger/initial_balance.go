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

// Numeric columns are read as text and parsed by decimal.Decimal's Scan.
const (
	accountInitialColumns     = `id, user_id, account_id, operational_year_id, initial_value::text, created_at, updated_at`
	bankAccountInitialColumns = `id, user_id, bank_account_id, operational_year_id, initial_value::text, created_at, updated_at`
)

// PostgresAccountInitialRepository implements the AccountInitialRepository interface
type PostgresAccountInitialRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewAccountInitialRepository creates a new account initial balance repository
func NewAccountInitialRepository(config *postgres.RepositoryConfig) ledgerRepo.AccountInitialRepository {
	return &PostgresAccountInitialRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresAccountInitialRepository) Create(ctx context.Context, initial *models.AccountInitial) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, account_id, operational_year_id, initial_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.AccountInitials)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		initial.UserID,
		initial.AccountID,
		initial.OperationalYearID,
		initial.InitialValue.String(),
		time.Now(),
	).Scan(&initial.ID, &initial.CreatedAt, &initial.UpdatedAt)
	if err != nil {
		return writeError("create", "account initial", err)
	}

	return nil
}

func (r *PostgresAccountInitialRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.AccountInitial, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2`, accountInitialColumns, r.tables.AccountInitials)

	initial, err := scanAccountInitial(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("account initial %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get account initial: %w", err)
	}

	return initial, nil
}

func (r *PostgresAccountInitialRepository) GetByYearAndAccount(ctx context.Context, userID uuid.UUID, yearID, accountID int64) (*models.AccountInitial, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1 AND operational_year_id = $2 AND account_id = $3
	`, accountInitialColumns, r.tables.AccountInitials)

	initial, err := scanAccountInitial(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, userID, yearID, accountID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("account initial for year %d, account %d: %w", yearID, accountID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get account initial: %w", err)
	}

	return initial, nil
}

func (r *PostgresAccountInitialRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AccountInitial, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE user_id = $1 ORDER BY operational_year_id, account_id
	`, accountInitialColumns, r.tables.AccountInitials)

	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list account initials: %w", err)
	}

	return collect(rows, scanAccountInitial)
}

func (r *PostgresAccountInitialRepository) Update(ctx context.Context, initial *models.AccountInitial) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET account_id = $1, operational_year_id = $2, initial_value = $3::numeric, updated_at = $4
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`, r.tables.AccountInitials)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		initial.AccountID,
		initial.OperationalYearID,
		initial.InitialValue.String(),
		time.Now(),
		initial.ID,
		initial.UserID,
	).Scan(&initial.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("account initial %d: %w", initial.ID, domain.ErrNotFound)
		}
		return writeError("update", "account initial", err)
	}

	return nil
}

func (r *PostgresAccountInitialRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.AccountInitials, "account_initial", id, userID)
}

func scanAccountInitial(row pgx.Row) (*models.AccountInitial, error) {
	var i models.AccountInitial
	if err := row.Scan(&i.ID, &i.UserID, &i.AccountID, &i.OperationalYearID, &i.InitialValue, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// PostgresBankAccountInitialRepository implements the BankAccountInitialRepository interface
type PostgresBankAccountInitialRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewBankAccountInitialRepository creates a new bank account initial balance repository
func NewBankAccountInitialRepository(config *postgres.RepositoryConfig) ledgerRepo.BankAccountInitialRepository {
	return &PostgresBankAccountInitialRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresBankAccountInitialRepository) Create(ctx context.Context, initial *models.BankAccountInitial) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, bank_account_id, operational_year_id, initial_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.BankAccountInitials)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		initial.UserID,
		initial.BankAccountID,
		initial.OperationalYearID,
		initial.InitialValue.String(),
		time.Now(),
	).Scan(&initial.ID, &initial.CreatedAt, &initial.UpdatedAt)
	if err != nil {
		return writeError("create", "bank account initial", err)
	}

	return nil
}

func (r *PostgresBankAccountInitialRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.BankAccountInitial, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2`, bankAccountInitialColumns, r.tables.BankAccountInitials)

	initial, err := scanBankAccountInitial(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("bank account initial %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get bank account initial: %w", err)
	}

	return initial, nil
}

func (r *PostgresBankAccountInitialRepository) GetByYearAndBankAccount(ctx context.Context, userID uuid.UUID, yearID, bankAccountID int64) (*models.BankAccountInitial, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1 AND operational_year_id = $2 AND bank_account_id = $3
	`, bankAccountInitialColumns, r.tables.BankAccountInitials)

	initial, err := scanBankAccountInitial(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, userID, yearID, bankAccountID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("bank account initial for year %d, bank account %d: %w", yearID, bankAccountID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get bank account initial: %w", err)
	}

	return initial, nil
}

func (r *PostgresBankAccountInitialRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BankAccountInitial, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE user_id = $1 ORDER BY operational_year_id, bank_account_id
	`, bankAccountInitialColumns, r.tables.BankAccountInitials)

	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bank account initials: %w", err)
	}

	return collect(rows, scanBankAccountInitial)
}

func (r *PostgresBankAccountInitialRepository) Update(ctx context.Context, initial *models.BankAccountInitial) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET bank_account_id = $1, operational_year_id = $2, initial_value = $3::numeric, updated_at = $4
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`, r.tables.BankAccountInitials)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		initial.BankAccountID,
		initial.OperationalYearID,
		initial.InitialValue.String(),
		time.Now(),
		initial.ID,
		initial.UserID,
	).Scan(&initial.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("bank account initial %d: %w", initial.ID, domain.ErrNotFound)
		}
		return writeError("update", "bank account initial", err)
	}

	return nil
}

func (r *PostgresBankAccountInitialRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.BankAccountInitials, "bank_account_initial", id, userID)
}

func scanBankAccountInitial(row pgx.Row) (*models.BankAccountInitial, error) {
	var i models.BankAccountInitial
	if err := row.Scan(&i.ID, &i.UserID, &i.BankAccountID, &i.OperationalYearID, &i.InitialValue, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}
