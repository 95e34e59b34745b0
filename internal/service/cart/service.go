package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	cartStore "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/cart"
	contentRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/content"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
	"github.com/m04kA/SMC-StudioBooking/internal/service/cart/models"
)

var validate = validator.New()

// Service корзина магазина мерча
//
// Сессия явно создаётся через Open и уничтожается через Close или Checkout.
// Состояние живёт только в хранилище сессий, сервис его не кэширует.
type Service struct {
	sessions     SessionStore
	products     ProductRepository
	orders       OrderRepository
	notifier     Notifier
	notifyTo     string
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(
	sessions SessionStore,
	products ProductRepository,
	orders OrderRepository,
	notifier Notifier,
	notifyTo string,
	logger Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		products:     products,
		orders:       orders,
		notifier:     notifier,
		notifyTo:     notifyTo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open создает новую пустую корзину
func (s *Service) Open(ctx context.Context) (*models.CartResponse, error) {
	now := s.timeProvider.Now()
	session := &domain.CartSession{
		ID:        uuid.New(),
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("OpenCart: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: OpenCart - store error: %v", ErrInternal, err)
	}

	s.logger.Info("OpenCart: opened cart id=%s", session.ID)
	return models.FromDomainCart(session), nil
}

// Get возвращает корзину
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.CartResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCart(session), nil
}

// AddItem добавляет товар или увеличивает количество
// Цена и название фиксируются на момент добавления
func (s *Service) AddItem(ctx context.Context, id uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error) {
	productID, err := uuid.Parse(strings.TrimSpace(req.ProductID))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid productId", ErrInvalidInput)
	}
	if req.Quantity <= 0 || req.Quantity > domain.MaxCartQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, domain.MaxCartQuantity)
	}

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, contentRepo.ErrItemNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("AddCartItem: failed to load product id=%s: %v", productID, err)
		return nil, fmt.Errorf("%w: AddCartItem - product lookup: %v", ErrInternal, err)
	}
	if product.Collection != domain.CollectionMerchandise || product.PriceCents == nil {
		return nil, ErrNotForSale
	}

	for _, item := range session.Items {
		if item.ProductID == productID && item.Quantity+req.Quantity > domain.MaxCartQuantity {
			return nil, fmt.Errorf("%w: at most %d of one product", ErrInvalidInput, domain.MaxCartQuantity)
		}
	}

	session.Add(domain.CartItem{
		ProductID:  productID,
		Title:      product.Title,
		PriceCents: *product.PriceCents,
		Quantity:   req.Quantity,
	})

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("AddCartItem: cart=%s product=%s qty=%d", id, productID, req.Quantity)
	return models.FromDomainCart(session), nil
}

// RemoveItem удаляет позицию из корзины
func (s *Service) RemoveItem(ctx context.Context, id, productID uuid.UUID) (*models.CartResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.Remove(productID) {
		return nil, ErrProductNotFound
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return models.FromDomainCart(session), nil
}

// Close удаляет корзину
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, cartStore.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("CloseCart: failed to delete cart id=%s: %v", id, err)
		return fmt.Errorf("%w: CloseCart - store error: %v", ErrInternal, err)
	}

	s.logger.Info("CloseCart: closed cart id=%s", id)
	return nil
}

// Checkout фиксирует заказ со статусом pending и закрывает корзину
// Оплата не выполняется, владельцу уходит уведомление о заказе
func (s *Service) Checkout(ctx context.Context, id uuid.UUID, req *models.CheckoutRequest) (*models.OrderResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(session.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := s.orders.Create(ctx, &domain.Order{
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Items:         session.Items,
		TotalCents:    session.TotalCents(),
		Status:        domain.OrderPending,
	})
	if err != nil {
		s.logger.Error("Checkout: failed to create order for cart=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Checkout - order store error: %v", ErrInternal, err)
	}

	// Заказ уже сохранён: ошибка удаления корзины только логируется, TTL её уберёт
	if err := s.sessions.Delete(ctx, id); err != nil {
		s.logger.Warn("Checkout: order id=%d created but cart=%s not deleted: %v", order.ID, id, err)
	}

	if s.notifier != nil && s.notifyTo != "" {
		s.notifier.Dispatch(notify.OrderNotification(s.notifyTo, order))
	}

	s.logger.Info("Checkout: order id=%d total=%d items=%d", order.ID, order.TotalCents, len(order.Items))
	return &models.OrderResponse{
		ID:         order.ID,
		Status:     string(order.Status),
		TotalCents: order.TotalCents,
		CreatedAt:  order.CreatedAt,
	}, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*domain.CartSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, cartStore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Cart: failed to load cart id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: load cart: %v", ErrInternal, err)
	}
	return session, nil
}

func (s *Service) save(ctx context.Context, session *domain.CartSession) error {
	session.UpdatedAt = s.timeProvider.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("Cart: failed to save cart id=%s: %v", session.ID, err)
		return fmt.Errorf("%w: save cart: %v", ErrInternal, err)
	}
	return nil
}
