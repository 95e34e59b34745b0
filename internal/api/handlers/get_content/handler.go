package get_content

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content/models"
)

const (
	msgInvalidItemID = "некорректный ID элемента"
	msgItemNotFound  = "элемент не найден"
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

// Handle GET /api/v1/content/{collection}/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	collection, err := content.ParseCollection(vars["collection"])
	if err != nil {
		handlers.RespondNotFound(w, msgItemNotFound)
		return
	}

	id, err := uuid.Parse(vars["itemId"])
	if err != nil {
		h.logger.Warn("GET /content/{collection}/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrItemNotFound) {
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("GET /content/{collection}/{id} - Failed to get item %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	// Элемент из другой коллекции для этого пути не существует
	if item.Collection != collection {
		handlers.RespondNotFound(w, msgItemNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainItem(item))
}
