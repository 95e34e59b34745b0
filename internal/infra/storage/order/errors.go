package order

import "errors"

var (
	ErrBuildQuery  = errors.New("order.repository: failed to build query")
	ErrExecQuery   = errors.New("order.repository: failed to execute query")
	ErrMarshalItem = errors.New("order.repository: failed to marshal items")
)
