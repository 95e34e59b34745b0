package send_message

import "errors"

var (
	// ErrValidation возвращается при некорректном сообщении
	ErrValidation = errors.New("invalid message")

	// ErrWrite возвращается при ошибке сохранения
	ErrWrite = errors.New("failed to save message")
)
