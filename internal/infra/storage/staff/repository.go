package staff

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonConsole/pkg/psqlbuilder"
)

// Repository репозиторий сотрудников
// Услуги и точки сотрудника хранятся в таблицах staff_services и staff_locations
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRoster получает активных сотрудников компании вместе с их услугами и точками
// Сортировка по имени (ASC)
func (r *Repository) GetRoster(ctx context.Context, companyID int64) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildRosterQuery(companyID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoster - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoster - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roster := make([]*domain.StaffMember, 0)
	for rows.Next() {
		var (
			member      domain.StaffMember
			serviceIDs  pq.Int64Array
			locationIDs pq.Int64Array
		)

		if err := rows.Scan(
			&member.ID,
			&member.CompanyID,
			&member.Name,
			&member.IsActive,
			&serviceIDs,
			&locationIDs,
		); err != nil {
			return nil, fmt.Errorf("%w: GetRoster - scan staff: %v", ErrScanRow, err)
		}

		member.ServiceIDs = []int64(serviceIDs)
		member.LocationIDs = []int64(locationIDs)
		roster = append(roster, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoster - rows error: %v", ErrScanRow, err)
	}

	return roster, nil
}

func buildRosterQuery(companyID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"s.id",
		"s.company_id",
		"s.name",
		"s.is_active",
		"COALESCE(array_agg(DISTINCT ss.service_id) FILTER (WHERE ss.service_id IS NOT NULL), '{}') AS service_ids",
		"COALESCE(array_agg(DISTINCT sl.location_id) FILTER (WHERE sl.location_id IS NOT NULL), '{}') AS location_ids",
	).
		From("staff s").
		LeftJoin("staff_services ss ON ss.staff_id = s.id").
		LeftJoin("staff_locations sl ON sl.staff_id = s.id").
		Where(squirrel.Eq{"s.company_id": companyID, "s.is_active": true}).
		GroupBy("s.id").
		OrderBy("s.name ASC", "s.id ASC")
}
