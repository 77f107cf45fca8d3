package ledger

import (
	"context"
	"fmt"
	"strings"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/domain/repositories"
	"bookkeeper/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// collect drains rows through scan and closes them.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return items, nil
}

// deleteOwned deletes one row scoped by owner. A foreign key violation means
// the row is still referenced and maps to a ConflictError.
func deleteOwned(ctx context.Context, executor repositories.DBTX, table, resourceType string, id int64, userID uuid.UUID) error {
	label := strings.ReplaceAll(resourceType, "_", " ")

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, table)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("%s %d is still referenced", label, id),
				ResourceType: resourceType,
				ResourceID:   id,
			}
		}
		return fmt.Errorf("delete %s: %w", label, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", label, id, domain.ErrNotFound)
	}

	return nil
}

// writeError maps constraint violations raised by inserts and updates.
func writeError(op, label string, err error) error {
	switch {
	case postgres.IsPgDuplicateError(err):
		return &domain.ConflictError{Message: fmt.Sprintf("%s already exists", label), ResourceType: strings.ReplaceAll(label, " ", "_")}
	case postgres.IsPgForeignKeyError(err):
		return &domain.ValidationError{Code: domain.CodeInvalidReference, Message: fmt.Sprintf("%s references an unknown record", label)}
	case postgres.IsPgCheckError(err):
		return &domain.ValidationError{Code: domain.CodeConstraint, Message: fmt.Sprintf("%s violates a constraint", label)}
	}
	return fmt.Errorf("%s %s: %w", op, label, err)
}
