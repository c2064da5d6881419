package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/psqlbuilder"
)

// Repository читает количество занятых сессий из таблицы бронирований.
// Бронирования создает и меняет модуль бронирования, здесь только чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountByDateRange считает занятые сессии по дням за период [from, to] одним запросом.
// Дни без бронирований в результат не попадают.
//
// Учитываются статусы из domain.CountedBookingStatuses (отмененные не занимают сессию).
func (r *Repository) CountByDateRange(ctx context.Context, from, to domain.Date) (map[domain.Date]int, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from, to)
	}

	statuses := make([]string, len(domain.CountedBookingStatuses))
	for i, s := range domain.CountedBookingStatuses {
		statuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("booking_date", "COUNT(*)").
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": from.Time()}).
		Where(squirrel.LtOrEq{"booking_date": to.Time()}).
		Where(squirrel.Eq{"status": statuses}).
		GroupBy("booking_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.Date]int)
	for rows.Next() {
		var date time.Time
		var count int

		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByDateRange - scan row: %v", ErrScanRow, err)
		}

		counts[domain.DateOf(date)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}
