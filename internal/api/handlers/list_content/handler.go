package list_content

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content"
)

const (
	msgUnknownCollection = "неизвестная коллекция"
	msgInvalidLimit      = "некорректный параметр limit"
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

// Handle GET /api/v1/content/{collection}
// Query params: category, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["collection"]
	collection, err := content.ParseCollection(raw)
	if err != nil {
		h.logger.Warn("GET /content/{collection} - Unknown collection: %s", raw)
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			h.logger.Warn("GET /content/{collection} - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	result, err := h.service.List(r.Context(), collection, r.URL.Query().Get("category"), limit)
	if err != nil {
		h.logger.Error("GET /content/{collection} - Failed to list %s: %v", collection, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
