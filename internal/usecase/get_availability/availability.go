package get_availability

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// resolveSlots отмечает занятые слоты сетки
//
// Слот s для услуги длительностью d занимает [s, s+d), бронирование - [timeSlot, timeSlot+duration).
// Слот занят, если интервалы пересекаются строго: бронирование 13:00-15:00 не блокирует 15:00.
func resolveSlots(
	candidates []types.TimeString,
	service domain.Service,
	reservations []*domain.Reservation,
	catalog Catalog,
) []Slot {
	footprints := make([]domain.Footprint, 0, len(reservations))
	for _, r := range reservations {
		// Отменённые пропускаем, даже если хранилище их вернуло
		if !r.IsActive() || !r.HasSlot() {
			continue
		}
		if r.TimeSlot.Minutes() < 0 {
			continue
		}
		footprints = append(footprints, domain.NewFootprint(r.TimeSlot, reservationDuration(r, catalog)))
	}

	result := make([]Slot, len(candidates))
	for i, slot := range candidates {
		candidate := domain.NewFootprint(slot, service.DurationHours)

		available := true
		for _, fp := range footprints {
			if candidate.Overlaps(fp) {
				available = false
				break
			}
		}

		result[i] = Slot{StartTime: slot, Available: available}
	}

	return result
}

// allAvailable результат деградированного режима
func allAvailable(candidates []types.TimeString) []Slot {
	result := make([]Slot, len(candidates))
	for i, slot := range candidates {
		result[i] = Slot{StartTime: slot, Available: true}
	}
	return result
}

// reservationDuration длительность, сохранённая в бронировании, иначе из каталога
// Ноль дальше превращается в один час (domain.NewFootprint)
func reservationDuration(r *domain.Reservation, catalog Catalog) int {
	if r.DurationHours > 0 {
		return r.DurationHours
	}
	if s, ok := catalog.Get(r.ServiceID); ok {
		return s.DurationHours
	}
	return 0
}
