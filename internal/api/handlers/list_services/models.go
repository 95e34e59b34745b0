package list_services

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DurationHours int    `json:"durationHours"`
	RequiresSlot  bool   `json:"requiresSlot"`
}

// CatalogResponse каталог услуг и сетка слотов
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Slots    []string          `json:"slots"`
}

func toResponse(services []domain.Service, slots []types.TimeString) CatalogResponse {
	resp := CatalogResponse{
		Services: make([]ServiceResponse, 0, len(services)),
		Slots:    make([]string, 0, len(slots)),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:            s.ID,
			Name:          s.Name,
			DurationHours: s.DurationHours,
			RequiresSlot:  s.RequiresSlot(),
		})
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, slot.String())
	}
	return resp
}
