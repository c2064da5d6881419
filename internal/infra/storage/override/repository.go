package override

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// Repository репозиторий исключений расписания по датам
// На одну дату хранится не больше одного исключения (date - первичный ключ)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRange получает исключения за период [from, to] включительно, отсортированные по дате
func (r *Repository) GetByRange(ctx context.Context, from, to domain.Date) ([]domain.DayOverride, error) {
	query, args, err := psqlbuilder.Select(
		"date",
		"status",
		"open_time",
		"close_time",
		"sessions_to_sell",
		"updated_by",
		"created_at",
		"updated_at",
	).
		From("day_overrides").
		Where(squirrel.GtOrEq{"date": from.Time()}).
		Where(squirrel.LtOrEq{"date": to.Time()}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.DayOverride, 0)
	for rows.Next() {
		var o domain.DayOverride
		var date time.Time
		var status string
		var openTime, closeTime sql.NullString
		var updatedBy sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&date,
			&status,
			&openTime,
			&closeTime,
			&o.SessionsToSell,
			&updatedBy,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByRange - scan row: %v", ErrScanRow, err)
		}

		o.Date = domain.DateOf(date)
		o.Status = domain.OverrideStatus(status)
		o.OpenTime = types.TimeString(openTime.String)
		o.CloseTime = types.TimeString(closeTime.String)
		o.UpdatedBy = updatedBy.Int64
		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time

		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// Upsert создает или заменяет исключение на дату
func (r *Repository) Upsert(ctx context.Context, o *domain.DayOverride) (*domain.DayOverride, error) {
	query, args, err := psqlbuilder.Insert("day_overrides").
		Columns(
			"date",
			"status",
			"open_time",
			"close_time",
			"sessions_to_sell",
			"updated_by",
		).
		Values(
			o.Date.Time(),
			string(o.Status),
			nullableTime(o.OpenTime),
			nullableTime(o.CloseTime),
			o.SessionsToSell,
			o.UpdatedBy,
		).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			status = EXCLUDED.status,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			sessions_to_sell = EXCLUDED.sessions_to_sell,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// Delete удаляет исключение, дата возвращается к настройкам по умолчанию
func (r *Repository) Delete(ctx context.Context, date domain.Date) error {
	query, args, err := psqlbuilder.Delete("day_overrides").
		Where(squirrel.Eq{"date": date.Time()}).
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
		return ErrOverrideNotFound
	}

	return nil
}

func nullableTime(t types.TimeString) sql.NullString {
	return sql.NullString{String: t.String(), Valid: !t.IsZero()}
}
