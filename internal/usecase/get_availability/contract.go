package get_availability

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	Get(id string) (domain.Service, bool)
}

// SlotGrid интерфейс сетки слотов
type SlotGrid interface {
	CandidateSlots() []types.TimeString
}

// Metrics счётчик деградированных чтений
type Metrics interface {
	IncAvailabilityDegraded()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
