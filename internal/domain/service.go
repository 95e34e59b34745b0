package domain

// Service услуга из каталога (фотосессия, съёмка мероприятия и т.д.)
// Каталог задаётся при деплое и не редактируется через форму записи
type Service struct {
	ID            string
	Name          string
	DurationHours int // 0 = услуга без привязки ко времени (например, только монтаж)
}

// RequiresSlot возвращает true, если для записи на услугу нужен слот
func (s Service) RequiresSlot() bool {
	return s.DurationHours > 0
}
