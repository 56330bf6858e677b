package plan

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/dbmetrics"
	"barber-scheduling-service/pkg/psqlbuilder"
	"barber-scheduling-service/pkg/types"
)

// Repository репозиторий еженедельных планов (мензалиста)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория планов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает план
func (r *Repository) Create(ctx context.Context, p *domain.RecurringPlan) (*domain.RecurringPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("recurring_plans").
		Columns(
			"barber_id",
			"client_name",
			"client_phone",
			"weekday",
			"start_time",
			"start_date",
			"end_date",
		).
		Values(
			p.BarberID,
			p.ClientName,
			p.ClientPhone,
			p.Weekday,
			p.StartTime,
			p.StartDate,
			p.EndDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	p.CreatedAt = createdAt.Time

	return p, nil
}

// Update обновляет план целиком
func (r *Repository) Update(ctx context.Context, p *domain.RecurringPlan) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("recurring_plans").
		Set("barber_id", p.BarberID).
		Set("client_name", p.ClientName).
		Set("client_phone", p.ClientPhone).
		Set("weekday", p.Weekday).
		Set("start_time", p.StartTime).
		Set("start_date", p.StartDate).
		Set("end_date", p.EndDate).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

// Delete удаляет план
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("recurring_plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

// GetByID получает план по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RecurringPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	plans, err := scanPlans(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, ErrPlanNotFound
	}

	return plans[0], nil
}

// ListByBarber получает все планы барбера
func (r *Repository) ListByBarber(ctx context.Context, barberID int64) ([]*domain.RecurringPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("weekday ASC, start_time ASC, start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPlans(rows)
}

// ListByKey получает планы с тем же (барбер, день недели, время)
// для проверки пересечения диапазонов; excludeID исключает сам
// обновляемый план. Внутри транзакции блокирует строки (FOR UPDATE)
func (r *Repository) ListByKey(ctx context.Context, barberID int64, weekday int, startTime types.TimeString, excludeID *int64) ([]*domain.RecurringPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectColumns().
		Where(squirrel.Eq{
			"barber_id":  barberID,
			"weekday":    weekday,
			"start_time": startTime,
		})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByKey - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByKey - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPlans(rows)
}

// BlockedTimes возвращает времена, занятые планами барбера на дату:
// день недели совпадает и [start_date, end_date|∞] покрывает дату
func (r *Repository) BlockedTimes(ctx context.Context, barberID int64, date string, weekday int) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT start_time").
		From("recurring_plans").
		Where(squirrel.Eq{"barber_id": barberID, "weekday": weekday}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.Or{
			squirrel.Eq{"end_date": nil},
			squirrel.GtOrEq{"end_date": date},
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BlockedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BlockedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BlockedTimes - scan row: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BlockedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"barber_id",
		"client_name",
		"client_phone",
		"weekday",
		"start_time",
		"start_date",
		"end_date",
		"created_at",
	).From("recurring_plans")
}

func scanPlans(rows *sql.Rows) ([]*domain.RecurringPlan, error) {
	plans := make([]*domain.RecurringPlan, 0)

	for rows.Next() {
		var p domain.RecurringPlan
		var endDate sql.NullTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.BarberID,
			&p.ClientName,
			&p.ClientPhone,
			&p.Weekday,
			&p.StartTime,
			&p.StartDate,
			&endDate,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPlans - scan row: %v", ErrScanRow, err)
		}

		if endDate.Valid {
			d := endDate.Time
			p.EndDate = &d
		}
		p.CreatedAt = createdAt.Time
		plans = append(plans, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPlans - rows error: %v", ErrScanRow, err)
	}

	return plans, nil
}
