package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	grid    SlotGrid
}

func NewHandler(catalog Catalog, grid SlotGrid) *Handler {
	return &Handler{catalog: catalog, grid: grid}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, toResponse(h.catalog.ListServices(), h.grid.CandidateSlots()))
}
