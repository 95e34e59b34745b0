package send_message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
)

var validate = validator.New()

// UseCase use case отправки сообщения владельцу студии
type UseCase struct {
	messageRepo MessageRepository
	notifier    Notifier
	notifyTo    string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(messageRepo MessageRepository, notifier Notifier, notifyTo string, logger Logger) *UseCase {
	return &UseCase{
		messageRepo: messageRepo,
		notifier:    notifier,
		notifyTo:    notifyTo,
		logger:      logger,
	}
}

// Execute сохраняет сообщение и ставит уведомление в очередь
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			uc.logger.Warn("SendMessage: validation failed: field=%s tag=%s", fieldErrs[0].Field(), fieldErrs[0].Tag())
			return nil, fmt.Errorf("%w: %s failed %q check", ErrValidation, fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	created, err := uc.messageRepo.Create(ctx, &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		uc.logger.Error("SendMessage: failed to save message: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	uc.logger.Info("SendMessage: saved message id=%d", created.ID)

	if uc.notifier != nil && uc.notifyTo != "" {
		uc.notifier.Dispatch(notify.MessageNotification(uc.notifyTo, created))
	}

	return &Response{ID: created.ID, CreatedAt: created.CreatedAt}, nil
}
