package submit_reservation

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request черновик заявки на съёмку
type Request struct {
	CustomerName  string    `validate:"required,max=200"`
	CustomerEmail string    `validate:"required,email,max=320"`
	CustomerPhone string    `validate:"required,max=50"`
	ServiceID     string    `validate:"required"`
	Date          time.Time `validate:"required"`
	TimeSlot      string    // HH:MM, пусто для услуг без слотов
	Location      string    `validate:"max=500"`
	Message       string    `validate:"max=2000"`
}

// Options настройки записи
type Options struct {
	HorizonMonths   int
	MinLeadDays     int
	StrictSlotCheck bool
	Location        *time.Location // Часовой пояс студии для определения "сегодня"
	NotifyTo        string         // Адрес владельца студии
}

// Response сохранённое бронирование
type Response struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceID     string
	ServiceName   string
	DurationHours int
	Date          time.Time
	TimeSlot      *types.TimeString
	Location      string
	Message       string
	Status        domain.ReservationStatus
	CreatedAt     time.Time
}
