package list_services

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type Catalog interface {
	ListServices() []domain.Service
}

type SlotGrid interface {
	CandidateSlots() []types.TimeString
}
