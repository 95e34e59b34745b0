package get_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// UseCase use case получения доступности слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         Catalog
	grid            SlotGrid
	storeTimeout    time.Duration
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// storeTimeout ограничивает чтение бронирований; 0 - без отдельного таймаута
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog Catalog,
	grid SlotGrid,
	storeTimeout time.Duration,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		grid:            grid,
		storeTimeout:    storeTimeout,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
//
// Доступность носит рекомендательный характер: слот не резервируется.
// Если хранилище недоступно, все слоты возвращаются свободными с Degraded = true.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	service, ok := uc.catalog.Get(serviceID)
	if !ok {
		uc.logger.Warn("GetAvailability: service %q not found", serviceID)
		return nil, ErrServiceNotFound
	}

	date := truncateDate(req.Date)
	candidates := uc.grid.CandidateSlots()

	response := &Response{
		Date:      date,
		ServiceID: service.ID,
	}

	reservations, err := uc.fetchReservations(ctx, date)
	if err != nil {
		uc.logger.Warn("GetAvailability: reservations fetch failed for date=%s, serving degraded availability: %v",
			date.Format(domain.DateFormat), err)
		if uc.metrics != nil {
			uc.metrics.IncAvailabilityDegraded()
		}
		response.Slots = allAvailable(candidates)
		response.Degraded = true
		return response, nil
	}

	response.Slots = resolveSlots(candidates, service, reservations, uc.catalog)

	uc.logger.Info("GetAvailability: service=%s, date=%s, reservations=%d, slots=%d",
		service.ID, date.Format(domain.DateFormat), len(reservations), len(response.Slots))

	return response, nil
}

func (uc *UseCase) fetchReservations(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	if uc.storeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.storeTimeout)
		defer cancel()
	}

	return uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		Date:             &date,
		ExcludeCancelled: true,
	})
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
