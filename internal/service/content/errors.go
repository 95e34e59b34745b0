package content

import "errors"

var (
	// ErrInvalidCollection возвращается для неизвестной коллекции
	ErrInvalidCollection = errors.New("unknown content collection")

	// ErrItemNotFound возвращается, когда элемент не найден
	ErrItemNotFound = errors.New("content item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMediaDisabled возвращается, если объектное хранилище не настроено
	ErrMediaDisabled = errors.New("media uploads are disabled")

	// ErrUpload возвращается при ошибке загрузки файла
	ErrUpload = errors.New("media upload failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
