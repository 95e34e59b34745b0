package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/service/cart/models"
)

type CartService interface {
	Open(ctx context.Context) (*models.CartResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*models.CartResponse, error)
	AddItem(ctx context.Context, id uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, id, productID uuid.UUID) (*models.CartResponse, error)
	Close(ctx context.Context, id uuid.UUID) error
	Checkout(ctx context.Context, id uuid.UUID, req *models.CheckoutRequest) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
