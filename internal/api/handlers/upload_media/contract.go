package upload_media

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content/models"
)

type ContentService interface {
	UploadMedia(ctx context.Context, collection domain.Collection, filename string, data []byte) (*models.UploadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
