package domain

import "github.com/m04kA/SMC-StudioBooking/pkg/types"

// SlotAvailability доступность одного слота сетки на конкретную дату
type SlotAvailability struct {
	StartTime types.TimeString
	Available bool
}

// Footprint полуоткрытый интервал [Start, End) в минутах от начала суток
type Footprint struct {
	Start int
	End   int
}

// NewFootprint строит интервал от начала слота длительностью hours часов
// Длительность 0 (или меньше) считается ровно одним часом
func NewFootprint(start types.TimeString, hours int) Footprint {
	if hours <= 0 {
		hours = 1
	}
	begin := start.Minutes()
	return Footprint{Start: begin, End: begin + hours*60}
}

// Overlaps возвращает true, если интервалы действительно пересекаются
// Граничащие интервалы ([9,11) и [11,13)) не пересекаются
func (f Footprint) Overlaps(other Footprint) bool {
	return f.Start < other.End && other.Start < f.End
}
