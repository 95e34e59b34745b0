package delete_content

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type ContentService interface {
	Delete(ctx context.Context, collection domain.Collection, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
