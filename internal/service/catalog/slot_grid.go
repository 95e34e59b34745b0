package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// SlotGrid фиксированная сетка времён начала, одинаковая для всех дней
type SlotGrid struct {
	slots []types.TimeString
}

// NewSlotGrid создает сетку из значений HH:MM
// Значения должны быть на границе часа, строго возрастать и не повторяться
func NewSlotGrid(values []string) (*SlotGrid, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrInvalidSlotGrid)
	}

	slots := make([]types.TimeString, 0, len(values))
	for i, v := range values {
		ts, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlotGrid, err)
		}
		if !ts.IsWholeHour() {
			return nil, fmt.Errorf("%w: %s is not on a whole hour", ErrInvalidSlotGrid, ts)
		}
		if i > 0 && !slots[i-1].IsBefore(ts) {
			return nil, fmt.Errorf("%w: %s must come after %s", ErrInvalidSlotGrid, ts, slots[i-1])
		}
		slots = append(slots, ts)
	}

	return &SlotGrid{slots: slots}, nil
}

// CandidateSlots возвращает копию сетки в порядке возрастания
func (g *SlotGrid) CandidateSlots() []types.TimeString {
	out := make([]types.TimeString, len(g.slots))
	copy(out, g.slots)
	return out
}

// Contains возвращает true, если время входит в сетку
func (g *SlotGrid) Contains(slot types.TimeString) bool {
	for _, s := range g.slots {
		if s == slot {
			return true
		}
	}
	return false
}
