package catalog

import "errors"

var (
	// ErrInvalidService возвращается при некорректной записи каталога
	ErrInvalidService = errors.New("catalog: invalid service")

	// ErrDuplicateService возвращается при повторяющемся ID услуги
	ErrDuplicateService = errors.New("catalog: duplicate service id")

	// ErrInvalidSlotGrid возвращается при некорректной сетке слотов
	ErrInvalidSlotGrid = errors.New("catalog: invalid slot grid")
)
