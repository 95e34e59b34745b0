package send_message

import (
	"time"

	sendMessage "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_message"
)

// SendMessageRequest форма обратной связи
type SendMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *SendMessageRequest) ToUseCaseRequest() *sendMessage.Request {
	return &sendMessage.Request{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
