package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StudioBooking/internal/service/reservations/models"
)

// Service сервис управления бронированиями для администратора
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// List получает бронирования с фильтром по дате и статусу
// Без фильтра по дате сначала новые, для конкретной даты - по времени слота
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationsFilter{Date: req.Date}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(r), nil
}

// UpdateStatus меняет статус бронирования
// Допустимые переходы: pending -> confirmed | cancelled, confirmed -> cancelled
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d, new status=%s", id, req.Status)

	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Reservation
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get reservation: %v", ErrInternal, err)
		}

		if !current.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, next); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		updated, err = s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - reload: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: reservation id=%d: %v", id, err)
		default:
			s.logger.Error("UpdateStatus: reservation id=%d: %v", id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%d is now %s", id, updated.Status)
	return models.FromDomainReservation(updated), nil
}
