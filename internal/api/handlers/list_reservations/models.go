package list_reservations

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/reservations/models"
)

// ToServiceRequest собирает фильтр из query параметров (оба опциональны)
func ToServiceRequest(dateStr, statusStr string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if dateStr = strings.TrimSpace(dateStr); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if statusStr = strings.TrimSpace(statusStr); statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
