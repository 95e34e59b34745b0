package subscribe_newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	newsletterRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/newsletter"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
)

var validate = validator.New()

// UseCase use case подписки на рассылку
type UseCase struct {
	repo     SubscriptionRepository
	notifier Notifier
	notifyTo string
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo SubscriptionRepository, notifier Notifier, notifyTo string, logger Logger) *UseCase {
	return &UseCase{
		repo:     repo,
		notifier: notifier,
		notifyTo: notifyTo,
		logger:   logger,
	}
}

// Execute сохраняет подписку и уведомляет владельца студии.
// Адрес сравнивается без учёта регистра
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			uc.logger.Warn("SubscribeNewsletter: validation failed: field=%s tag=%s", fieldErrs[0].Field(), fieldErrs[0].Tag())
			return nil, fmt.Errorf("%w: %s failed %q check", ErrValidation, fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	created, err := uc.repo.Create(ctx, &domain.NewsletterSubscription{
		Email:  req.Email,
		Status: domain.SubscriptionActive,
	})
	if err != nil {
		if errors.Is(err, newsletterRepo.ErrAlreadySubscribed) {
			uc.logger.Info("SubscribeNewsletter: email already subscribed")
			return nil, ErrAlreadySubscribed
		}
		uc.logger.Error("SubscribeNewsletter: failed to save subscription: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	uc.logger.Info("SubscribeNewsletter: saved subscription id=%d", created.ID)

	if uc.notifier != nil && uc.notifyTo != "" {
		uc.notifier.Dispatch(notify.NewsletterNotification(uc.notifyTo, created))
	}

	return &Response{ID: created.ID, Email: created.Email, CreatedAt: created.CreatedAt}, nil
}
