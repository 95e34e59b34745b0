package submit_reservation

import "errors"

var (
	// ErrValidation возвращается при некорректной заявке, запись не выполняется
	ErrValidation = errors.New("invalid reservation")

	// ErrSlotTaken возвращается в строгом режиме, если слот уже занят
	ErrSlotTaken = errors.New("time slot is already taken")

	// ErrWrite возвращается при ошибке сохранения, заявку можно отправить повторно
	ErrWrite = errors.New("failed to save reservation")
)
