package submit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	Get(id string) (domain.Service, bool)
}

// SlotGrid интерфейс сетки слотов
type SlotGrid interface {
	Contains(slot types.TimeString) bool
}

// Notifier очередь уведомлений
type Notifier interface {
	Dispatch(n notify.Notification) bool
}

// Metrics счётчик заявок по результату
type Metrics interface {
	IncReservation(result string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
