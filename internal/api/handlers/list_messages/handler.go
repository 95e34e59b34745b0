package list_messages

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/messages"
)

const msgInvalidParams = "некорректные параметры пагинации"

// MessageListResponse HTTP response model
type MessageListResponse struct {
	Messages []messages.MessageResponse `json:"messages"`
	Total    int                        `json:"total"`
}

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/messages
// Query params: limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := parseUint(r.URL.Query().Get("limit"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	offset, err := parseUint(r.URL.Query().Get("offset"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	list, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("GET /admin/messages - Failed to list messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MessageListResponse{Messages: list, Total: len(list)})
}

func parseUint(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
