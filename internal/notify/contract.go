package notify

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/integrations/notifier"
)

// Sender транспорт уведомлений (notifier.Client)
type Sender interface {
	Send(ctx context.Context, msg notifier.Message) error
}

// Metrics счётчик уведомлений по виду и результату
type Metrics interface {
	IncNotification(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
