package list_messages

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/messages"
)

type MessageService interface {
	List(ctx context.Context, limit, offset uint64) ([]messages.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
