package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonConsole/pkg/psqlbuilder"
)

const tableSettings = "console_settings"

// Repository репозиторий настроек консоли
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompany получает настройки компании
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByCompany(ctx context.Context, companyID int64) (*domain.ConsoleSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"company_id",
		"week_start",
		"timezone",
		"same_staff_fallback",
		"cancellation_cutoff_hours",
		"reschedule_cutoff_hours",
		"notification_email",
		"digest_rrule",
		"created_at",
		"updated_at",
	).
		From(tableSettings).
		Where(squirrel.Eq{"company_id": companyID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s                    domain.ConsoleSettings
		weekStart            int
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.CompanyID,
		&weekStart,
		&s.Timezone,
		&s.SameStaffFallback,
		&s.CancellationCutoffHours,
		&s.RescheduleCutoffHours,
		&s.NotificationEmail,
		&s.DigestRRule,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - scan settings: %v", ErrScanRow, err)
	}

	s.WeekStart = time.Weekday(weekStart)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или обновляет настройки компании
func (r *Repository) Upsert(ctx context.Context, s *domain.ConsoleSettings) (*domain.ConsoleSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsertQuery(s).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

func buildUpsertQuery(s *domain.ConsoleSettings) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableSettings).
		Columns(
			"company_id",
			"week_start",
			"timezone",
			"same_staff_fallback",
			"cancellation_cutoff_hours",
			"reschedule_cutoff_hours",
			"notification_email",
			"digest_rrule",
		).
		Values(
			s.CompanyID,
			int(s.WeekStart),
			s.Timezone,
			string(s.SameStaffFallback),
			s.CancellationCutoffHours,
			s.RescheduleCutoffHours,
			s.NotificationEmail,
			s.DigestRRule,
		).
		Suffix(`ON CONFLICT (company_id) DO UPDATE SET
			week_start = EXCLUDED.week_start,
			timezone = EXCLUDED.timezone,
			same_staff_fallback = EXCLUDED.same_staff_fallback,
			cancellation_cutoff_hours = EXCLUDED.cancellation_cutoff_hours,
			reschedule_cutoff_hours = EXCLUDED.reschedule_cutoff_hours,
			notification_email = EXCLUDED.notification_email,
			digest_rrule = EXCLUDED.digest_rrule,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`)
}
