package cart

import "errors"

var (
	// ErrSessionNotFound возвращается для неизвестной или истёкшей корзины
	ErrSessionNotFound = errors.New("cart session not found")

	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrNotForSale возвращается для элементов без цены или не из магазина
	ErrNotForSale = errors.New("item is not for sale")

	// ErrEmptyCart возвращается при оформлении пустой корзины
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
