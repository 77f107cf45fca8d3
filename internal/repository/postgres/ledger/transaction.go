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

const transactionColumns = `id, user_id, operational_year_id, bank_account_id, date, amount::text, saldo::text, text, created_at, updated_at`

// PostgresTransactionRepository implements the TransactionRepository interface
type PostgresTransactionRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewTransactionRepository creates a new bank transaction repository
func NewTransactionRepository(config *postgres.RepositoryConfig) ledgerRepo.TransactionRepository {
	return &PostgresTransactionRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresTransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, operational_year_id, bank_account_id, date, amount, saldo, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7, $8, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Transactions)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		tx.UserID,
		tx.OperationalYearID,
		tx.BankAccountID,
		tx.Date,
		tx.Amount.String(),
		tx.Saldo.String(),
		tx.Text,
		time.Now(),
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return writeError("create", "transaction", err)
	}

	return nil
}

func (r *PostgresTransactionRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2`, transactionColumns, r.tables.Transactions)

	tx, err := scanTransaction(postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return tx, nil
}

func (r *PostgresTransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE user_id = $1 ORDER BY date, id
	`, transactionColumns, r.tables.Transactions)

	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return collect(rows, scanTransaction)
}

func (r *PostgresTransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET operational_year_id = $1, bank_account_id = $2, date = $3,
		    amount = $4::numeric, saldo = $5::numeric, text = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
		RETURNING updated_at
	`, r.tables.Transactions)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		tx.OperationalYearID,
		tx.BankAccountID,
		tx.Date,
		tx.Amount.String(),
		tx.Saldo.String(),
		tx.Text,
		time.Now(),
		tx.ID,
		tx.UserID,
	).Scan(&tx.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("transaction %d: %w", tx.ID, domain.ErrNotFound)
		}
		return writeError("update", "transaction", err)
	}

	return nil
}

func (r *PostgresTransactionRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.Transactions, "transaction", id, userID)
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.OperationalYearID,
		&t.BankAccountID,
		&t.Date,
		&t.Amount,
		&t.Saldo,
		&t.Text,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
