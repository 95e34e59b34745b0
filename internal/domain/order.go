package domain

import "time"

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
)

// Order заказ из магазина мерча
// Оплата не реализована: заказ фиксируется со статусом pending
type Order struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	Items         []CartItem
	TotalCents    int64
	Status        OrderStatus
	CreatedAt     time.Time
}
