package send_message

import "time"

// Request сообщение из формы обратной связи
type Request struct {
	Name    string `validate:"required,max=200"`
	Email   string `validate:"required,email,max=320"`
	Subject string `validate:"required,max=200"`
	Message string `validate:"required,max=2000"`
}

// Response сохранённое сообщение
type Response struct {
	ID        int64
	CreatedAt time.Time
}
