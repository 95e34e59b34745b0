package notifier

import "errors"

var (
	// ErrNotification возвращается, когда релей ответил не 2xx
	ErrNotification = errors.New("notifier client: notification rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сериализация)
	ErrInternal = errors.New("notifier client: internal error")
)
