package domain

import (
	"time"

	"github.com/google/uuid"
)

// CartItem позиция корзины (снимок товара на момент добавления)
type CartItem struct {
	ProductID  uuid.UUID `json:"productId"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"priceCents"`
	Quantity   int       `json:"quantity"`
}

// CartSession явная сессия корзины магазина
// Создаётся через Open и уничтожается через Close или Checkout
type CartSession struct {
	ID        uuid.UUID  `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TotalCents сумма корзины в минимальных единицах валюты
func (c *CartSession) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// TotalItems общее количество единиц товара
func (c *CartSession) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Add добавляет товар или увеличивает количество существующей позиции
func (c *CartSession) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove удаляет позицию, возвращает false если её не было
func (c *CartSession) Remove(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
