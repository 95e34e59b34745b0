package create_content

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownCollection  = "неизвестная коллекция"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/content/{collection}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collection, err := content.ParseCollection(mux.Vars(r)["collection"])
	if err != nil {
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	var req models.CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/content/{collection} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), collection, &req)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("POST /admin/content/{collection} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/content/{collection} - Failed to create item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
