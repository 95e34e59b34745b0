package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest фильтр списка бронирований для администратора
type ListReservationsRequest struct {
	Date   *time.Time `json:"date,omitempty"`
	Status *string    `json:"status,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse бронирование для админки
type ReservationResponse struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	DurationHours int       `json:"durationHours"`
	Date          string    `json:"date"`
	TimeSlot      *string   `json:"timeSlot,omitempty"`
	Location      string    `json:"location,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// ToDomainStatus конвертирует строку в статус
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		ServiceID:     r.ServiceID,
		ServiceName:   r.ServiceName,
		DurationHours: r.DurationHours,
		Date:          r.Date.Format(domain.DateFormat),
		Location:      r.Location,
		Message:       r.Message,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.HasSlot() {
		slot := r.TimeSlot.String()
		resp.TimeSlot = &slot
	}
	return resp
}

// FromDomainReservationList конвертирует список
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: items, Total: len(items)}
}
