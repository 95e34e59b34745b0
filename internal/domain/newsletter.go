package domain

import "time"

// SubscriptionStatus статус подписки на рассылку
type SubscriptionStatus string

const SubscriptionActive SubscriptionStatus = "active"

// NewsletterSubscription подписка на рассылку
type NewsletterSubscription struct {
	ID        int64
	Email     string // Хранится в нижнем регистре
	Status    SubscriptionStatus
	CreatedAt time.Time
}
