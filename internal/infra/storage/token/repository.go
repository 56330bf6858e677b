package token

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/dbmetrics"
	"barber-scheduling-service/pkg/psqlbuilder"
)

// Repository репозиторий одноразовых токенов подтверждения записи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет токен
func (r *Repository) Create(ctx context.Context, t *domain.ConfirmToken) (*domain.ConfirmToken, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_confirm_tokens").
		Columns("token", "booking_id", "expires_at").
		Values(t.Token, t.BookingID, t.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	t.CreatedAt = createdAt.Time

	return t, nil
}

// GetByToken получает токен по значению
// Внутри транзакции блокирует строку (FOR UPDATE), чтобы два
// конкурентных подтверждения одного токена сериализовались
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.ConfirmToken, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"token",
		"booking_id",
		"expires_at",
		"used_at",
		"created_at",
	).
		From("booking_confirm_tokens").
		Where(squirrel.Eq{"token": token})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.ConfirmToken
	var usedAt, createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.Token,
		&t.BookingID,
		&t.ExpiresAt,
		&usedAt,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan token: %v", ErrScanRow, err)
	}

	if usedAt.Valid {
		u := usedAt.Time
		t.UsedAt = &u
	}
	t.CreatedAt = createdAt.Time

	return &t, nil
}

// MarkUsed помечает токен использованным
func (r *Repository) MarkUsed(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_confirm_tokens").
		Set("used_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Eq{"used_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}
