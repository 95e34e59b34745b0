package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	submitReservation "github.com/m04kA/SMC-StudioBooking/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "некорректные данные заявки, проверьте заполненные поля"
	msgSlotTaken          = "выбранное время уже занято, выберите другой слот"
	msgWriteFailed        = "не удалось сохранить заявку, попробуйте отправить ещё раз"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrValidation):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, submitReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: service_id=%s, date=%s, slot=%s",
				req.ServiceID, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, submitReservation.ErrWrite):
			h.logger.Error("POST /reservations - Failed to save reservation: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgWriteFailed)

		default:
			h.logger.Error("POST /reservations - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, service_id=%s", result.ID, result.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
