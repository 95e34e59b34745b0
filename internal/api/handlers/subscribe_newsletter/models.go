package subscribe_newsletter

import (
	"time"

	subscribeNewsletter "github.com/m04kA/SMC-StudioBooking/internal/usecase/subscribe_newsletter"
)

// SubscribeRequest форма подписки на рассылку
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscriptionResponse HTTP response model
type SubscriptionResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *SubscribeRequest) ToUseCaseRequest() *subscribeNewsletter.Request {
	return &subscribeNewsletter.Request{Email: r.Email}
}
