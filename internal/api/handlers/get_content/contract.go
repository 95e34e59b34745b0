package get_content

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type ContentService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
