package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// CreateItemRequest новый элемент коллекции
type CreateItemRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"max=100"`
	MediaURL    string `json:"mediaUrl" validate:"omitempty,url"`
	PriceCents  *int64 `json:"priceCents,omitempty" validate:"omitempty,min=0"`
}

// ItemResponse элемент коллекции
type ItemResponse struct {
	ID          string    `json:"id"`
	Collection  string    `json:"collection"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	PriceCents  *int64    `json:"priceCents,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ItemListResponse элементы коллекции
type ItemListResponse struct {
	Collection string         `json:"collection"`
	Items      []ItemResponse `json:"items"`
}

// UploadResponse результат загрузки медиафайла
type UploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	Resized     bool   `json:"resized"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// FromDomainItem конвертирует domain модель в response
func FromDomainItem(item *domain.ContentItem) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID.String(),
		Collection:  string(item.Collection),
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		MediaURL:    item.MediaURL,
		PriceCents:  item.PriceCents,
		CreatedAt:   item.CreatedAt,
	}
}
