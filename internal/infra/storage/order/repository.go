package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const table = "orders"

// Repository репозиторий заказов магазина
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заказ, позиции хранятся в колонке JSONB
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalItem, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("customer_name", "customer_email", "items", "total_cents", "status").
		Values(order.CustomerName, order.CustomerEmail, items, order.TotalCents, order.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return order, nil
}
