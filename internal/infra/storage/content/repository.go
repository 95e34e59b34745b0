package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const table = "content_items"

var columns = []string{"id", "collection", "title", "description", "category", "media_url", "price_cents", "created_at"}

// Repository репозиторий контента сайта (галерея, видео, пресеты, мерч)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет элемент, ID генерируется на стороне приложения
func (r *Repository) Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "collection", "title", "description", "category", "media_url", "price_cents").
		Values(item.ID, item.Collection, item.Title, item.Description, item.Category, item.MediaURL, toNullInt64(item.PriceCents)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// GetByID возвращает элемент по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	return item, nil
}

// ListByCollection возвращает элементы коллекции, новые первыми.
// category фильтрует по категории, limit 0 - без ограничения
func (r *Repository) ListByCollection(ctx context.Context, collection domain.Collection, category string, limit uint64) ([]*domain.ContentItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("created_at DESC")
	if category != "" {
		builder = builder.Where(squirrel.Eq{"category": category})
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCollection - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCollection - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.ContentItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCollection - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCollection - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Delete удаляет элемент коллекции
func (r *Repository) Delete(ctx context.Context, collection domain.Collection, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "collection": collection}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.ContentItem, error) {
	var (
		item  domain.ContentItem
		price sql.NullInt64
	)

	err := row.Scan(&item.ID, &item.Collection, &item.Title, &item.Description, &item.Category, &item.MediaURL, &price, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		v := price.Int64
		item.PriceCents = &v
	}

	return &item, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
