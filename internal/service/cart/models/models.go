package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// AddItemRequest добавление товара в корзину
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest данные покупателя
type CheckoutRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=320"`
}

// CartItemResponse позиция корзины
type CartItemResponse struct {
	ProductID     string `json:"productId"`
	Title         string `json:"title"`
	PriceCents    int64  `json:"priceCents"`
	Quantity      int    `json:"quantity"`
	SubtotalCents int64  `json:"subtotalCents"`
}

// CartResponse корзина
type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"totalCents"`
	TotalItems int                `json:"totalItems"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// OrderResponse оформленный заказ
type OrderResponse struct {
	ID         int64     `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromDomainCart конвертирует сессию в response
func FromDomainCart(c *domain.CartSession) *CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemResponse{
			ProductID:     item.ProductID.String(),
			Title:         item.Title,
			PriceCents:    item.PriceCents,
			Quantity:      item.Quantity,
			SubtotalCents: item.PriceCents * int64(item.Quantity),
		})
	}
	return &CartResponse{
		ID:         c.ID.String(),
		Items:      items,
		TotalCents: c.TotalCents(),
		TotalItems: c.TotalItems(),
		UpdatedAt:  c.UpdatedAt,
	}
}
