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

const bankAccountColumns = `id, user_id, name, bank, clearing_nr, account_nr, created_at, updated_at`

// PostgresBankAccountRepository implements the BankAccountRepository interface
type PostgresBankAccountRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(config *postgres.RepositoryConfig) ledgerRepo.BankAccountRepository {
	return &PostgresBankAccountRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresBankAccountRepository) Create(ctx context.Context, bankAccount *models.BankAccount) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, bank, clearing_nr, account_nr, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.BankAccounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		bankAccount.UserID,
		bankAccount.Name,
		bankAccount.Bank,
		bankAccount.ClearingNumber,
		bankAccount.AccountNumber,
		time.Now(),
	).Scan(&bankAccount.ID, &bankAccount.CreatedAt, &bankAccount.UpdatedAt)
	if err != nil {
		return writeError("create", "bank account", err)
	}

	return nil
}

func (r *PostgresBankAccountRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.BankAccount, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1 AND user_id = $2
	`, bankAccountColumns, r.tables.BankAccounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	bankAccount, err := scanBankAccount(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("bank account %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}

	return bankAccount, nil
}

func (r *PostgresBankAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BankAccount, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE user_id = $1 ORDER BY name, id
	`, bankAccountColumns, r.tables.BankAccounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}

	return collect(rows, scanBankAccount)
}

func (r *PostgresBankAccountRepository) Update(ctx context.Context, bankAccount *models.BankAccount) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, bank = $2, clearing_nr = $3, account_nr = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
		RETURNING updated_at
	`, r.tables.BankAccounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		bankAccount.Name,
		bankAccount.Bank,
		bankAccount.ClearingNumber,
		bankAccount.AccountNumber,
		time.Now(),
		bankAccount.ID,
		bankAccount.UserID,
	).Scan(&bankAccount.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("bank account %d: %w", bankAccount.ID, domain.ErrNotFound)
		}
		return writeError("update", "bank account", err)
	}

	return nil
}

func (r *PostgresBankAccountRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.BankAccounts, "bank_account", id, userID)
}

func scanBankAccount(row pgx.Row) (*models.BankAccount, error) {
	var b models.BankAccount
	if err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Bank, &b.ClearingNumber, &b.AccountNumber, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
