package create_content

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content/models"
)

type ContentService interface {
	Create(ctx context.Context, collection domain.Collection, req *models.CreateItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
