package newsletter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/RST-ReservationService/pkg/txmanager"
)

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.Executor

// Repository репозиторий для работы с подписчиками рассылки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рассылки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Subscribe подписывает email на рассылку.
// Повторная подписка реактивирует существующую запись (upsert по email).
func (r *Repository) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("newsletter_subscribers").
		Columns("email", "is_active").
		Values(email, true).
		Suffix("ON CONFLICT (email) DO UPDATE SET is_active = TRUE").
		Suffix("RETURNING id, email, subscribed_at, is_active").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Subscribe - build insert query: %v", ErrBuildQuery, err)
	}

	var sub domain.NewsletterSubscriber
	var subscribedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&sub.Email,
		&subscribedAt,
		&sub.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Subscribe - execute insert: %v", ErrExecQuery, err)
	}

	sub.SubscribedAt = subscribedAt.Time

	return &sub, nil
}

// Unsubscribe деактивирует подписку (запись сохраняется)
func (r *Repository) Unsubscribe(ctx context.Context, email string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("newsletter_subscribers").
		Set("is_active", false).
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Unsubscribe - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unsubscribe - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Unsubscribe - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}
