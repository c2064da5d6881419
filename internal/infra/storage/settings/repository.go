package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// settingsRowID настройки хранятся одной строкой
const settingsRowID = 1

// Repository репозиторий настроек работы центра
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущие настройки
func (r *Repository) Get(ctx context.Context) (*domain.OperatingSettings, error) {
	query, args, err := psqlbuilder.Select(
		"session_duration_minutes",
		"cleaning_buffer_minutes",
		"tank_stagger_interval_minutes",
		"default_open_time",
		"default_close_time",
		"updated_at",
	).
		From("operating_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.OperatingSettings
	var openTime, closeTime string
	var updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.SessionDurationMinutes,
		&s.CleaningBufferMinutes,
		&s.TankStaggerIntervalMinutes,
		&openTime,
		&closeTime,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.DefaultOpenTime = types.TimeString(openTime)
	s.DefaultCloseTime = types.TimeString(closeTime)
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update сохраняет настройки (создает строку, если ее еще нет)
func (r *Repository) Update(ctx context.Context, s *domain.OperatingSettings) (*domain.OperatingSettings, error) {
	query, args, err := psqlbuilder.Insert("operating_settings").
		Columns(
			"id",
			"session_duration_minutes",
			"cleaning_buffer_minutes",
			"tank_stagger_interval_minutes",
			"default_open_time",
			"default_close_time",
		).
		Values(
			settingsRowID,
			s.SessionDurationMinutes,
			s.CleaningBufferMinutes,
			s.TankStaggerIntervalMinutes,
			s.DefaultOpenTime.String(),
			s.DefaultCloseTime.String(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			session_duration_minutes = EXCLUDED.session_duration_minutes,
			cleaning_buffer_minutes = EXCLUDED.cleaning_buffer_minutes,
			tank_stagger_interval_minutes = EXCLUDED.tank_stagger_interval_minutes,
			default_open_time = EXCLUDED.default_open_time,
			default_close_time = EXCLUDED.default_close_time,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time
	return s, nil
}
