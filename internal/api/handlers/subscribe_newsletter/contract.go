package subscribe_newsletter

import (
	"context"

	subscribeNewsletter "github.com/m04kA/SMC-StudioBooking/internal/usecase/subscribe_newsletter"
)

type SubscribeNewsletterUseCase interface {
	Execute(ctx context.Context, req *subscribeNewsletter.Request) (*subscribeNewsletter.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
