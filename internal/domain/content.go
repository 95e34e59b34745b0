package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection именованная коллекция контента сайта
type Collection string

const (
	CollectionGallery      Collection = "gallery"
	CollectionVideos       Collection = "videos"
	CollectionPresets      Collection = "presets"
	CollectionMerchandise  Collection = "merchandise"
	CollectionTestimonials Collection = "testimonials"
	CollectionBlog         Collection = "blog"
)

// Collections список всех поддерживаемых коллекций
var Collections = []Collection{
	CollectionGallery,
	CollectionVideos,
	CollectionPresets,
	CollectionMerchandise,
	CollectionTestimonials,
	CollectionBlog,
}

// IsValid возвращает true для известных коллекций
func (c Collection) IsValid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// IsSellable возвращает true для коллекций с ценой
func (c Collection) IsSellable() bool {
	return c == CollectionPresets || c == CollectionMerchandise
}

// ContentItem элемент контента (фото, видео, пресет, товар, отзыв, запись блога)
type ContentItem struct {
	ID          uuid.UUID
	Collection  Collection
	Title       string
	Description string
	Category    string
	MediaURL    string
	PriceCents  *int64 // Только для presets и merchandise
	CreatedAt   time.Time
}
