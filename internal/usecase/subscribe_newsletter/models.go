package subscribe_newsletter

import "time"

// Request подписка из формы рассылки
type Request struct {
	Email string `validate:"required,email,max=320"`
}

// Response сохранённая подписка
type Response struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
