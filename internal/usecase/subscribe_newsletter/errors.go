package subscribe_newsletter

import "errors"

var (
	// ErrValidation возвращается при некорректном адресе
	ErrValidation = errors.New("invalid subscription")

	// ErrAlreadySubscribed возвращается, если адрес уже подписан
	ErrAlreadySubscribed = errors.New("email already subscribed")

	// ErrWrite возвращается при ошибке сохранения
	ErrWrite = errors.New("failed to save subscription")
)
