package tank

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/psqlbuilder"
)

var tankColumns = []string{
	"id",
	"name",
	"status",
	"sort_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий баков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория баков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый бак
func (r *Repository) Create(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	query, args, err := psqlbuilder.Insert("tanks").
		Columns("name", "status", "sort_order").
		Values(t.Name, string(t.Status), t.SortOrder).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает бак по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tank, error) {
	query, args, err := psqlbuilder.Select(tankColumns...).
		From("tanks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTank(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tank: %v", ErrScanRow, err)
	}

	return t, nil
}

// List получает все баки в порядке расписания
// Порядок важен: индекс готового бака определяет его смещение старта
func (r *Repository) List(ctx context.Context) ([]domain.Tank, error) {
	query, args, err := psqlbuilder.Select(tankColumns...).
		From("tanks").
		OrderBy("sort_order ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tanks := make([]domain.Tank, 0)
	for rows.Next() {
		t, err := scanTank(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		tanks = append(tanks, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tanks, nil
}

// Update обновляет название, статус и порядок бака
func (r *Repository) Update(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	query, args, err := psqlbuilder.Update("tanks").
		Set("name", t.Name).
		Set("status", string(t.Status)).
		Set("sort_order", t.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// Delete удаляет бак
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("tanks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTankNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTank(row rowScanner) (*domain.Tank, error) {
	var t domain.Tank
	var status string
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&t.ID, &t.Name, &status, &t.SortOrder, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.Status = domain.TankStatus(status)
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
