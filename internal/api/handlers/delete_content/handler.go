package delete_content

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content"
)

const (
	msgUnknownCollection = "неизвестная коллекция"
	msgInvalidItemID     = "некорректный ID элемента"
	msgItemNotFound      = "элемент не найден"
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

// Handle DELETE /api/v1/admin/content/{collection}/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	collection, err := content.ParseCollection(vars["collection"])
	if err != nil {
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	id, err := uuid.Parse(vars["itemId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/content/{collection}/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.Delete(r.Context(), collection, id); err != nil {
		switch {
		case errors.Is(err, content.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("DELETE /admin/content/{collection}/{id} - Failed to delete item %s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.NoContent(w)
}
