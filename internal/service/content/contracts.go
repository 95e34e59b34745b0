package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ContentRepository интерфейс репозитория контента
type ContentRepository interface {
	Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error)
	ListByCollection(ctx context.Context, collection domain.Collection, category string, limit uint64) ([]*domain.ContentItem, error)
	Delete(ctx context.Context, collection domain.Collection, id uuid.UUID) error
}

// MediaStore объектное хранилище (mediastore.Client)
type MediaStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
