package send_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	sendMessage "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_message"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные данные сообщения, проверьте заполненные поля"
	msgWriteFailed        = "не удалось отправить сообщение, попробуйте ещё раз"
)

type Handler struct {
	useCase SendMessageUseCase
	logger  Logger
}

func NewHandler(useCase SendMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, sendMessage.ErrValidation):
			h.logger.Warn("POST /messages - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, sendMessage.ErrWrite):
			h.logger.Error("POST /messages - Failed to save message: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgWriteFailed)

		default:
			h.logger.Error("POST /messages - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, MessageResponse{ID: result.ID, CreatedAt: result.CreatedAt})
}
