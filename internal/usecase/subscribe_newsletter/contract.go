package subscribe_newsletter

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
)

// SubscriptionRepository интерфейс репозитория подписчиков
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.NewsletterSubscription) (*domain.NewsletterSubscription, error)
}

// Notifier очередь уведомлений
type Notifier interface {
	Dispatch(n notify.Notification) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
