package list_content

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content/models"
)

type ContentService interface {
	List(ctx context.Context, collection domain.Collection, category string, limit uint64) (*models.ItemListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
