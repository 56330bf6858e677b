package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/dbmetrics"
	"barber-scheduling-service/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации расписания барберов
// Конфигурация создается неявно со значениями по умолчанию
// при первом обращении к барберу
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает конфигурацию расписания барбера вместе с выходными
// Если конфигурации еще нет, создает строку с дефолтными значениями
func (r *Repository) GetConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	cfg, err := r.selectConfig(ctx, barberID)
	if err == ErrConfigNotFound {
		if err := r.insertDefault(ctx, barberID); err != nil {
			return nil, err
		}
		cfg, err = r.selectConfig(ctx, barberID)
	}
	if err != nil {
		return nil, err
	}

	daysOff, err := r.listDaysOff(ctx, barberID)
	if err != nil {
		return nil, err
	}
	cfg.DaysOff = domain.NewDateSet(daysOff...)

	return cfg, nil
}

// UpdateConfig обновляет конфигурацию расписания и заменяет список выходных
// Предполагается вызов внутри транзакции (замена выходных не атомарна сама по себе)
func (r *Repository) UpdateConfig(ctx context.Context, cfg *domain.ScheduleConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workDays := make([]int64, 0, 7)
	for _, d := range cfg.WorkDays.List() {
		workDays = append(workDays, int64(d))
	}

	query, args, err := psqlbuilder.Update("barber_schedule_config").
		Set("day_start", cfg.DayStart).
		Set("day_end", cfg.DayEnd).
		Set("lunch_start", cfg.LunchStart).
		Set("lunch_end", cfg.LunchEnd).
		Set("slot_minutes", cfg.SlotMinutes).
		Set("work_days", pq.Array(workDays)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"barber_id": cfg.BarberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return r.replaceDaysOff(ctx, cfg.BarberID, cfg.DaysOff.List())
}

func (r *Repository) selectConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"barber_id",
		"day_start",
		"day_end",
		"lunch_start",
		"lunch_end",
		"slot_minutes",
		"work_days",
		"created_at",
		"updated_at",
	).
		From("barber_schedule_config").
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectConfig - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ScheduleConfig
	var workDays []int64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.BarberID,
		&cfg.DayStart,
		&cfg.DayEnd,
		&cfg.LunchStart,
		&cfg.LunchEnd,
		&cfg.SlotMinutes,
		pq.Array(&workDays),
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: selectConfig - scan config: %v", ErrScanRow, err)
	}

	weekdays := make([]int, 0, len(workDays))
	for _, d := range workDays {
		weekdays = append(weekdays, int(d))
	}
	cfg.WorkDays = domain.NewWeekdaySet(weekdays...)
	cfg.DaysOff = domain.NewDateSet()
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

func (r *Repository) insertDefault(ctx context.Context, barberID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	def := domain.DefaultScheduleConfig(barberID)
	workDays := make([]int64, 0, 7)
	for _, d := range def.WorkDays.List() {
		workDays = append(workDays, int64(d))
	}

	query, args, err := psqlbuilder.Insert("barber_schedule_config").
		Columns("barber_id", "day_start", "day_end", "lunch_start", "lunch_end", "slot_minutes", "work_days").
		Values(def.BarberID, def.DayStart, def.DayEnd, def.LunchStart, def.LunchEnd, def.SlotMinutes, pq.Array(workDays)).
		Suffix("ON CONFLICT (barber_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertDefault - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertDefault - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) listDaysOff(ctx context.Context, barberID int64) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("to_char(ymd, 'YYYY-MM-DD')").
		From("barber_days_off").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("ymd ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listDaysOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listDaysOff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var ymd string
		if err := rows.Scan(&ymd); err != nil {
			return nil, fmt.Errorf("%w: listDaysOff - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, ymd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listDaysOff - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

func (r *Repository) replaceDaysOff(ctx context.Context, barberID int64, dates []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("barber_days_off").
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceDaysOff - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: replaceDaysOff - execute delete: %v", ErrExecQuery, err)
	}

	if len(dates) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("barber_days_off").Columns("barber_id", "ymd")
	for _, ymd := range dates {
		insertBuilder = insertBuilder.Values(barberID, ymd)
	}
	insertQuery, insertArgs, err := insertBuilder.
		Suffix("ON CONFLICT (barber_id, ymd) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceDaysOff - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: replaceDaysOff - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
