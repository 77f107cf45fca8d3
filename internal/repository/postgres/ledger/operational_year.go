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

const operationalYearColumns = `id, user_id, name, start_date, end_date, created_at, updated_at`

// PostgresOperationalYearRepository implements the OperationalYearRepository interface
type PostgresOperationalYearRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewOperationalYearRepository creates a new operational year repository
func NewOperationalYearRepository(config *postgres.RepositoryConfig) ledgerRepo.OperationalYearRepository {
	return &PostgresOperationalYearRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresOperationalYearRepository) Create(ctx context.Context, year *models.OperationalYear) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.OperationalYears)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		year.UserID,
		year.Name,
		year.StartDate,
		year.EndDate,
		time.Now(),
	).Scan(&year.ID, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		return writeError("create", "operational year", err)
	}

	return nil
}

func (r *PostgresOperationalYearRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.OperationalYear, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1 AND user_id = $2
	`, operationalYearColumns, r.tables.OperationalYears)

	executor := postgres.GetExecutor(ctx, r.pool)
	year, err := scanOperationalYear(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("operational year %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get operational year: %w", err)
	}

	return year, nil
}

func (r *PostgresOperationalYearRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.OperationalYear, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE user_id = $1 ORDER BY start_date, id
	`, operationalYearColumns, r.tables.OperationalYears)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list operational years: %w", err)
	}

	return collect(rows, scanOperationalYear)
}

func (r *PostgresOperationalYearRepository) Update(ctx context.Context, year *models.OperationalYear) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, start_date = $2, end_date = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`, r.tables.OperationalYears)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		year.Name,
		year.StartDate,
		year.EndDate,
		time.Now(),
		year.ID,
		year.UserID,
	).Scan(&year.UpdatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return fmt.Errorf("operational year %d: %w", year.ID, domain.ErrNotFound)
		}
		return writeError("update", "operational year", err)
	}

	return nil
}

func (r *PostgresOperationalYearRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return deleteOwned(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.OperationalYears, "operational_year", id, userID)
}

func scanOperationalYear(row pgx.Row) (*models.OperationalYear, error) {
	var y models.OperationalYear
	if err := row.Scan(&y.ID, &y.UserID, &y.Name, &y.StartDate, &y.EndDate, &y.CreatedAt, &y.UpdatedAt); err != nil {
		return nil, err
	}
	return &y, nil
}
