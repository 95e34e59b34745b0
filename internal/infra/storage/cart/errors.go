package cart

import "errors"

var (
	// ErrSessionNotFound сессия корзины не найдена или истекла
	ErrSessionNotFound = errors.New("cart.store: session not found")

	ErrStore  = errors.New("cart.store: redis operation failed")
	ErrDecode = errors.New("cart.store: failed to decode session")
)
