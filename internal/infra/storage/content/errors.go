package content

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент контента не найден
	ErrItemNotFound = errors.New("content.repository: item not found")

	ErrBuildQuery = errors.New("content.repository: failed to build query")
	ErrExecQuery  = errors.New("content.repository: failed to execute query")
	ErrScanRow    = errors.New("content.repository: failed to scan row")
)
