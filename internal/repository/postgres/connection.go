package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"bookkeeper/internal/domain/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Users                   string
	Accounts                string
	BankAccounts            string
	OperationalYears        string
	AccountInitials         string
	BankAccountInitials     string
	Transactions            string
	Verifications           string
	VerificationRows        string
	VerificationAttachments string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:                   prefix + "users",
		Accounts:                prefix + "accounts",
		BankAccounts:            prefix + "bank_accounts",
		OperationalYears:        prefix + "operational_years",
		AccountInitials:         prefix + "operational_year_account_initials",
		BankAccountInitials:     prefix + "operational_year_bank_account_initials",
		Transactions:            prefix + "transactions",
		Verifications:           prefix + "verifications",
		VerificationRows:        prefix + "verification_rows",
		VerificationAttachments: prefix + "verification_attachments",
	}
}

// All returns every table in dependency order (referenced tables first).
func (t *TableNames) All() []string {
	return []string{
		t.Users,
		t.Accounts,
		t.BankAccounts,
		t.OperationalYears,
		t.AccountInitials,
		t.BankAccountInitials,
		t.Transactions,
		t.Verifications,
		t.VerificationRows,
		t.VerificationAttachments,
	}
}

// CreateConnectionPool creates a pgx connection pool.
//
// PgBouncer in transaction pooling mode (port 6543) does not support prepared
// statements, so on that port the pool switches to QueryExecModeCacheDescribe
// unless default_query_exec_mode was set explicitly in the connection string.
//
// Table names are interpolated with fmt.Sprintf before the SQL reaches the
// server, so each prefix gets its own cached statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the transaction stored in ctx, or the pool when there
// is none, so repositories join an enclosing transaction automatically.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
