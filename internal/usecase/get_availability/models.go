package get_availability

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	Date      time.Time // Дата без времени
	ServiceID string
}

// Response модель ответа: все слоты сетки в исходном порядке
type Response struct {
	Date      time.Time
	ServiceID string
	Slots     []Slot
	Degraded  bool // true, если хранилище недоступно и все слоты показаны свободными
}

// Slot доступность одного слота
type Slot struct {
	StartTime types.TimeString
	Available bool
}
