package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	"bookkeeper/internal/domain/repositories"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"
	"bookkeeper/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, user_id, name, description, parent_account_id, created_at, updated_at`

// PostgresAccountRepository implements the AccountRepository interface
type PostgresAccountRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(config *postgres.RepositoryConfig) ledgerRepo.AccountRepository {
	return &PostgresAccountRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new account
func (r *PostgresAccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, description, parent_account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Accounts)

	now := time.Now()
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		account.UserID,
		account.Name,
		account.Description,
		account.ParentAccountID,
		now,
		now,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return &domain.ValidationError{Code: domain.CodeInvalidParent, Message: "invalid parent account"}
		}
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account owned by userID
func (r *PostgresAccountRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, accountColumns, r.tables.Accounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	account, err := scanAccount(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	return account, nil
}

// ListByUser returns every account the user owns, ordered by ID
func (r *PostgresAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY id
	`, accountColumns, r.tables.Accounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return collect(rows, scanAccount)
}

// Update writes name, description and parent in one statement
func (r *PostgresAccountRepository) Update(ctx context.Context, account *models.Account) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, parent_account_id = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`, r.tables.Accounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		account.Name,
		account.Description,
		account.ParentAccountID,
		time.Now(),
		account.ID,
		account.UserID,
	).Scan(&account.UpdatedAt)

	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("account %d: %w", account.ID, domain.ErrNotFound)
		}
		if postgres.IsPgForeignKeyError(err) {
			return &domain.ValidationError{Code: domain.CodeInvalidParent, Message: "invalid parent account"}
		}
		return fmt.Errorf("update account: %w", err)
	}

	return nil
}

// Delete deletes an account. Accounts with children or bookings are kept.
func (r *PostgresAccountRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Accounts)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return &domain.ConflictError{
				Message:      "account is still referenced by child accounts or bookings",
				ResourceType: "account",
				ResourceID:   id,
			}
		}
		return fmt.Errorf("delete account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// LockHierarchy takes a transaction-scoped advisory lock keyed by the user,
// serializing concurrent edits of one user's account tree.
func (r *PostgresAccountRepository) LockHierarchy(ctx context.Context, userID uuid.UUID) error {
	tx := repositories.GetTx(ctx)
	if tx == nil {
		return errors.New("lock account hierarchy: no transaction in context")
	}

	key := fmt.Sprintf("%s:%s", r.tables.Accounts, userID)
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("lock account hierarchy: %w", err)
	}

	r.logger.Debug("account hierarchy locked", "user_id", userID)
	return nil
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Description,
		&account.ParentAccountID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
