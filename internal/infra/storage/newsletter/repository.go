package newsletter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const table = "newsletter_subscribers"

// Repository репозиторий подписчиков рассылки
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет подписчика, заполняет ID и CreatedAt.
// Повторный адрес не перезаписывается, возвращается ErrAlreadySubscribed
func (r *Repository) Create(ctx context.Context, sub *domain.NewsletterSubscription) (*domain.NewsletterSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("email", "status").
		Values(sub.Email, sub.Status).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &sub.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlreadySubscribed
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return sub, nil
}
