package messages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("service: internal error")

const defaultLimit = 100

// MessageRepository интерфейс репозитория сообщений
type MessageRepository interface {
	List(ctx context.Context, limit, offset uint64) ([]*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MessageResponse сообщение для админки
type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service чтение входящих сообщений администратором
type Service struct {
	repo   MessageRepository
	logger Logger
}

func NewService(repo MessageRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает сообщения, новые первыми
func (s *Service) List(ctx context.Context, limit, offset uint64) ([]MessageResponse, error) {
	if limit == 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	list, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ListMessages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMessages - repository error: %v", ErrInternal, err)
	}

	out := make([]MessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}

	s.logger.Info("ListMessages: fetched %d messages", len(out))
	return out, nil
}
