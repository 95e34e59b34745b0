package notify

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/integrations/notifier"
)

// LogSender пишет уведомления в лог вместо отправки
// Используется, когда релей отключён в конфигурации
type LogSender struct {
	Logger Logger
}

func (s LogSender) Send(_ context.Context, msg notifier.Message) error {
	s.Logger.Info("Notify: relay disabled, to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
