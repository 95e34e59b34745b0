package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

// UseCase use case отправки заявки на съёмку
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	catalog         Catalog
	grid            SlotGrid
	notifier        Notifier
	metrics         Metrics
	opts            Options
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	catalog Catalog,
	grid SlotGrid,
	notifier Notifier,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.HorizonMonths <= 0 {
		opts.HorizonMonths = domain.DefaultHorizonMonths
	}
	if opts.MinLeadDays <= 0 {
		opts.MinLeadDays = domain.DefaultMinLeadDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		catalog:         catalog,
		grid:            grid,
		notifier:        notifier,
		metrics:         metrics,
		opts:            opts,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отправки заявки
//
// По умолчанию доступность слота повторно не проверяется: две заявки на один слот
// обе сохраняются в статусе pending, конфликт решает администратор.
// При StrictSlotCheck проверка и вставка выполняются в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalize(req)

	uc.logger.Info("SubmitReservation: service=%s, date=%s, slot=%q",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	reservation, err := uc.buildReservation(req)
	if err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		uc.inc(metrics.ResultValidation)
		return nil, err
	}

	var created *domain.Reservation
	if uc.opts.StrictSlotCheck {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if err := uc.ensureSlotFree(txCtx, reservation); err != nil {
				return err
			}
			var createErr error
			created, createErr = uc.create(txCtx, reservation)
			return createErr
		})
	} else {
		created, err = uc.create(ctx, reservation)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			uc.logger.Warn("SubmitReservation: slot %s on %s already taken",
				reservation.TimeSlot, reservation.Date.Format(domain.DateFormat))
			uc.inc(metrics.ResultConflict)
			return nil, err
		case errors.Is(err, ErrWrite):
			uc.inc(metrics.ResultError)
			return nil, err
		default:
			uc.logger.Error("SubmitReservation: transaction failed: %v", err)
			uc.inc(metrics.ResultError)
			return nil, fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	uc.inc(metrics.ResultSuccess)
	uc.logger.Info("SubmitReservation: successfully created reservation id=%d", created.ID)

	// Уведомление уходит после коммита и не влияет на результат
	if uc.notifier != nil && uc.opts.NotifyTo != "" {
		uc.notifier.Dispatch(notify.BookingNotification(uc.opts.NotifyTo, created))
	}

	return toResponse(created), nil
}

func (uc *UseCase) buildReservation(req *Request) (*domain.Reservation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	service, ok := uc.catalog.Get(req.ServiceID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown service %q", ErrValidation, req.ServiceID)
	}

	date := dateOnly(req.Date)
	now := uc.timeProvider.Now().In(uc.opts.Location)
	if err := validateDate(date, now, uc.opts.MinLeadDays, uc.opts.HorizonMonths); err != nil {
		return nil, err
	}

	slot, err := validateSlot(req.TimeSlot, service, uc.grid)
	if err != nil {
		return nil, err
	}

	return &domain.Reservation{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		DurationHours: service.DurationHours,
		Date:          date,
		TimeSlot:      slot,
		Location:      req.Location,
		Message:       req.Message,
		Status:        domain.StatusPending,
	}, nil
}

func (uc *UseCase) create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("SubmitReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return created, nil
}

// ensureSlotFree проверяет пересечение с активными бронированиями на дату
// В транзакции репозиторий блокирует прочитанные строки
func (uc *UseCase) ensureSlotFree(ctx context.Context, reservation *domain.Reservation) error {
	if !reservation.HasSlot() {
		return nil
	}

	existing, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		Date:             ptr.Ptr(reservation.Date),
		ExcludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("SubmitReservation: failed to read reservations for slot check: %v", err)
		return fmt.Errorf("%w: slot check: %v", ErrWrite, err)
	}

	wanted := domain.NewFootprint(reservation.TimeSlot, reservation.DurationHours)
	for _, r := range existing {
		if !r.IsActive() || !r.HasSlot() {
			continue
		}

		hours := r.DurationHours
		if hours <= 0 {
			if s, ok := uc.catalog.Get(r.ServiceID); ok {
				hours = s.DurationHours
			}
		}

		if wanted.Overlaps(domain.NewFootprint(r.TimeSlot, hours)) {
			return ErrSlotTaken
		}
	}

	return nil
}

func (uc *UseCase) inc(result string) {
	if uc.metrics != nil {
		uc.metrics.IncReservation(result)
	}
}

func toResponse(r *domain.Reservation) *Response {
	resp := &Response{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		ServiceID:     r.ServiceID,
		ServiceName:   r.ServiceName,
		DurationHours: r.DurationHours,
		Date:          r.Date,
		Location:      r.Location,
		Message:       r.Message,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
	if r.HasSlot() {
		resp.TimeSlot = ptr.Ptr(r.TimeSlot)
	}
	return resp
}
