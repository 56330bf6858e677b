package barber

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/dbmetrics"
	"barber-scheduling-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с барберами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает барбера
func (r *Repository) Create(ctx context.Context, name string) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barbers").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, is_active, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	b := domain.Barber{Name: name}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.IsActive, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &b, nil
}

// GetByID получает барбера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "is_active", "created_at").
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}

	return &b, nil
}

// List получает список барберов, опционально только активных
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "is_active", "created_at").
		From("barbers").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var b domain.Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// Update обновляет имя и/или активность барбера
// nil-поля не изменяются
func (r *Repository) Update(ctx context.Context, id int64, name *string, isActive *bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("barbers").
		Where(squirrel.Eq{"id": id})

	if name == nil && isActive == nil {
		return nil
	}
	if name != nil {
		updateBuilder = updateBuilder.Set("name", *name)
	}
	if isActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *isActive)
	}

	query, args, err := updateBuilder.ToSql()
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
		return ErrBarberNotFound
	}

	return nil
}
