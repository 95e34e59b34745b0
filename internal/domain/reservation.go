package domain

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// ReservationStatus статус бронирования фотосессии
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid возвращает true для известных статусов
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Reservation бронирование, созданное клиентом через форму записи
type Reservation struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceID     string
	Date          time.Time        // Дата без времени (YYYY-MM-DD)
	TimeSlot      types.TimeString // Пусто для услуг без слотов (DurationHours == 0)
	Location      string
	Message       string
	Status        ReservationStatus

	// Денормализованные данные услуги на момент записи
	ServiceName   string
	DurationHours int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает время в расписании
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// HasSlot возвращает true, если бронирование привязано к слоту сетки
func (r *Reservation) HasSlot() bool {
	return !r.TimeSlot.IsZero()
}

// CanTransitionTo проверяет допустимость перехода статуса администратором
// pending -> confirmed | cancelled, confirmed -> cancelled
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	Date             *time.Time         // Конкретная дата (опционально)
	Status           *ReservationStatus // Конкретный статус (опционально)
	ExcludeCancelled bool               // Исключить отменённые (игнорируется, если задан Status)
}
