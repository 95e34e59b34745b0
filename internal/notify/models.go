package notify

import "fmt"

// Kind вид уведомления
type Kind string

const (
	KindBooking    Kind = "booking"
	KindMessage    Kind = "message"
	KindOrder      Kind = "order"
	KindNewsletter Kind = "newsletter"
)

// Notification уведомление владельцу студии
type Notification struct {
	Kind    Kind
	To      string
	Subject string
	Body    string
	ReplyTo string
}

// DeliveryError ошибка доставки, публикуется в канал Errors()
type DeliveryError struct {
	Kind Kind
	To   string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("notify: %s to %s: %v", e.Kind, e.To, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
