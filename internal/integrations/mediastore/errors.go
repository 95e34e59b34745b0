package mediastore

import "errors"

var (
	// ErrUpload возвращается при ошибке загрузки объекта
	ErrUpload = errors.New("mediastore client: upload failed")

	// ErrInvalidConfig возвращается при неполной конфигурации хранилища
	ErrInvalidConfig = errors.New("mediastore client: invalid config")
)
