package get_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_availability"
)

// SlotResponse доступность слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string         `json:"date"`
	ServiceID string         `json:"serviceId"`
	Slots     []SlotResponse `json:"slots"`
	Degraded  bool           `json:"degraded"`
}

// ToUseCaseRequest собирает запрос из query параметров
func ToUseCaseRequest(serviceID, dateStr string) (*getAvailability.Request, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, fmt.Errorf("serviceId is required")
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	return &getAvailability.Request{Date: date, ServiceID: serviceID}, nil
}

// FromUseCaseResponse конвертирует ответ use case
func FromUseCaseResponse(resp *getAvailability.Response) AvailabilityResponse {
	out := AvailabilityResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     make([]SlotResponse, 0, len(resp.Slots)),
		Degraded:  resp.Degraded,
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{StartTime: s.StartTime.String(), Available: s.Available})
	}
	return out
}
