package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions
type TransactionManager interface {
	// ExecTx executes a function within a transaction
	ExecTx(ctx context.Context, fn TxFn) error

	// ExecTxWithOptions executes a function within a transaction started with
	// the given options (isolation level, access mode).
	ExecTxWithOptions(ctx context.Context, opts pgx.TxOptions, fn TxFn) error
}
