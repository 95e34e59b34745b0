package submit_reservation

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	submitReservation "github.com/m04kA/SMC-StudioBooking/internal/usecase/submit_reservation"
)

// SubmitReservationRequest HTTP request model
type SubmitReservationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`     // "2025-05-21"
	TimeSlot  string `json:"timeSlot"` // "13:00", пусто для услуг без слотов
	Location  string `json:"location,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	DurationHours int       `json:"durationHours"`
	Date          string    `json:"date"`
	TimeSlot      *string   `json:"timeSlot,omitempty"`
	Location      string    `json:"location,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустая дата остаётся нулевой и отклоняется валидацией use case
func (r *SubmitReservationRequest) ToUseCaseRequest() (*submitReservation.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &submitReservation.Request{
		CustomerName:  r.Name,
		CustomerEmail: r.Email,
		CustomerPhone: r.Phone,
		ServiceID:     r.ServiceID,
		Date:          date,
		TimeSlot:      r.TimeSlot,
		Location:      r.Location,
		Message:       r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *submitReservation.Response) ReservationResponse {
	out := ReservationResponse{
		ID:            resp.ID,
		Name:          resp.CustomerName,
		Email:         resp.CustomerEmail,
		Phone:         resp.CustomerPhone,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		DurationHours: resp.DurationHours,
		Date:          resp.Date.Format(domain.DateFormat),
		Location:      resp.Location,
		Message:       resp.Message,
		Status:        string(resp.Status),
		CreatedAt:     resp.CreatedAt,
	}
	if resp.TimeSlot != nil {
		slot := resp.TimeSlot.String()
		out.TimeSlot = &slot
	}
	return out
}
