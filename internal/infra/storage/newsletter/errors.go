package newsletter

import "errors"

var (
	// ErrAlreadySubscribed возвращается, когда адрес уже есть в рассылке
	ErrAlreadySubscribed = errors.New("newsletter.repository: email already subscribed")

	ErrBuildQuery = errors.New("newsletter.repository: failed to build query")
	ErrExecQuery  = errors.New("newsletter.repository: failed to execute query")
)
