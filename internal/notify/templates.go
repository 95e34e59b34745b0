package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const noDetails = "No additional details provided"

// BookingNotification уведомление о новой заявке на съёмку
func BookingNotification(to string, r *domain.Reservation) Notification {
	var b strings.Builder

	fmt.Fprintf(&b, "New booking request from %s\n\n", r.CustomerName)
	fmt.Fprintf(&b, "Service: %s\n", r.ServiceName)
	fmt.Fprintf(&b, "Date: %s\n", r.Date.Format(domain.DateFormat))
	if r.HasSlot() {
		fmt.Fprintf(&b, "Time: %s\n", r.TimeSlot)
	}
	fmt.Fprintf(&b, "Location: %s\n", r.Location)
	fmt.Fprintf(&b, "Phone: %s\n", r.CustomerPhone)
	fmt.Fprintf(&b, "Email: %s\n\n", r.CustomerEmail)

	details := r.Message
	if strings.TrimSpace(details) == "" {
		details = noDetails
	}
	fmt.Fprintf(&b, "Details:\n%s\n\n", details)
	b.WriteString("Note: Custom quote required - contact client for pricing.")

	return Notification{
		Kind:    KindBooking,
		To:      to,
		Subject: "New Booking Request - " + r.ServiceName,
		Body:    b.String(),
		ReplyTo: r.CustomerEmail,
	}
}

// MessageNotification уведомление о сообщении из формы обратной связи
func MessageNotification(to string, m *domain.ContactMessage) Notification {
	return Notification{
		Kind:    KindMessage,
		To:      to,
		Subject: "New Message - " + m.Subject,
		Body: fmt.Sprintf("New message from %s\n\nEmail: %s\nSubject: %s\n\nMessage:\n%s",
			m.Name, m.Email, m.Subject, m.Message),
		ReplyTo: m.Email,
	}
}

// NewsletterNotification уведомление о новом подписчике рассылки
func NewsletterNotification(to string, s *domain.NewsletterSubscription) Notification {
	return Notification{
		Kind:    KindNewsletter,
		To:      to,
		Subject: "New Newsletter Subscriber",
		Body: fmt.Sprintf("New newsletter subscriber: %s\nSubscribed at: %s",
			s.Email, s.CreatedAt.UTC().Format(time.RFC3339)),
		ReplyTo: s.Email,
	}
}

// OrderNotification уведомление о новом заказе из магазина
func OrderNotification(to string, o *domain.Order) Notification {
	var b strings.Builder

	fmt.Fprintf(&b, "New order #%d from %s\n\n", o.ID, o.CustomerName)
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %s x%d: %s\n", item.Title, item.Quantity, formatCents(item.PriceCents*int64(item.Quantity)))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", formatCents(o.TotalCents))
	fmt.Fprintf(&b, "Email: %s", o.CustomerEmail)

	return Notification{
		Kind:    KindOrder,
		To:      to,
		Subject: fmt.Sprintf("New Order #%d", o.ID),
		Body:    b.String(),
		ReplyTo: o.CustomerEmail,
	}
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
