package subscribe_newsletter

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	subscribeNewsletter "github.com/m04kA/SMC-StudioBooking/internal/usecase/subscribe_newsletter"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректный адрес электронной почты"
	msgAlreadySubscribed  = "этот адрес уже подписан на рассылку"
	msgWriteFailed        = "не удалось оформить подписку, попробуйте ещё раз"
)

type Handler struct {
	useCase SubscribeNewsletterUseCase
	logger  Logger
}

func NewHandler(useCase SubscribeNewsletterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/newsletter
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /newsletter - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, subscribeNewsletter.ErrValidation):
			h.logger.Warn("POST /newsletter - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, subscribeNewsletter.ErrAlreadySubscribed):
			handlers.RespondConflict(w, msgAlreadySubscribed)

		case errors.Is(err, subscribeNewsletter.ErrWrite):
			h.logger.Error("POST /newsletter - Failed to save subscription: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgWriteFailed)

		default:
			h.logger.Error("POST /newsletter - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, SubscriptionResponse{
		ID:        result.ID,
		Email:     result.Email,
		CreatedAt: result.CreatedAt,
	})
}
