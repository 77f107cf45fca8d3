package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// SchemaSQL returns the DDL with every table name prefixed.
func SchemaSQL(prefix string) string {
	return strings.ReplaceAll(schemaSQL, "{{prefix}}", prefix)
}

// EnsureSchema creates any missing tables and indexes. Safe to run repeatedly.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, prefix string, logger *slog.Logger) error {
	if _, err := pool.Exec(ctx, SchemaSQL(prefix)); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("schema ensured", "prefix", prefix)
	return nil
}

// DropAll drops every table for the prefix. Intended for dev/test resets.
func DropAll(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	all := tables.All()
	slices.Reverse(all)
	for _, table := range all {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
