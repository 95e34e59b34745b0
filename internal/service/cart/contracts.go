package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
)

// SessionStore хранилище сессий корзины
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.CartSession, error)
	Save(ctx context.Context, session *domain.CartSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository источник товаров (коллекция merchandise)
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// Notifier очередь уведомлений
type Notifier interface {
	Dispatch(n notify.Notification) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
