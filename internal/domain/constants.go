package domain

// Значения по умолчанию для записи
const (
	DefaultHorizonMonths = 3 // Запись возможна не дальше чем на 3 месяца вперёд
	DefaultMinLeadDays   = 1 // Самая ранняя дата записи - завтра
)

// Ограничения бизнес-валидации
const (
	MaxNameLength     = 200
	MaxPhoneLength    = 50
	MaxLocationLength = 500
	MaxMessageLength  = 2000
	MaxSubjectLength  = 200
	MaxCartQuantity   = 99
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultSlotGrid сетка слотов по умолчанию
var DefaultSlotGrid = []string{"09:00", "11:00", "13:00", "15:00", "17:00"}
