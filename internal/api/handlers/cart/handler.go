package cart

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	cartService "github.com/m04kA/SMC-StudioBooking/internal/service/cart"
	"github.com/m04kA/SMC-StudioBooking/internal/service/cart/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCartID      = "некорректный ID корзины"
	msgInvalidProductID   = "некорректный ID товара"
	msgCartNotFound       = "корзина не найдена или истекла"
	msgProductNotFound    = "товар не найден"
	msgNotForSale         = "товар недоступен для покупки"
	msgEmptyCart          = "корзина пуста"
	msgInvalidInput       = "некорректные данные, проверьте заполненные поля"
)

// Handler обработчики корзины магазина
type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Open POST /api/v1/carts
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Open(r.Context())
	if err != nil {
		h.respondServiceError(w, "POST /carts", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/carts/{cartId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r, "GET /carts/{id}")
	if !ok {
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /carts/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// AddItem POST /api/v1/carts/{cartId}/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r, "POST /carts/{id}/items")
	if !ok {
		return
	}

	var req models.AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddItem(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "POST /carts/{id}/items", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// RemoveItem DELETE /api/v1/carts/{cartId}/items/{productId}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r, "DELETE /carts/{id}/items/{productId}")
	if !ok {
		return
	}

	productID, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		h.logger.Warn("DELETE /carts/{id}/items/{productId} - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.RemoveItem(r.Context(), id, productID)
	if err != nil {
		h.respondServiceError(w, "DELETE /carts/{id}/items/{productId}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Close DELETE /api/v1/carts/{cartId}
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r, "DELETE /carts/{id}")
	if !ok {
		return
	}

	if err := h.service.Close(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /carts/{id}", err)
		return
	}
	handlers.NoContent(w)
}

// Checkout POST /api/v1/carts/{cartId}/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r, "POST /carts/{id}/checkout")
	if !ok {
		return
	}

	var req models.CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Checkout(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "POST /carts/{id}/checkout", err)
		return
	}

	h.logger.Info("POST /carts/{id}/checkout - Order created: id=%d, cart=%s", result.ID, id)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) cartID(w http.ResponseWriter, r *http.Request, route string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		h.logger.Warn("%s - Invalid cart ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, cartService.ErrSessionNotFound):
		h.logger.Warn("%s - Cart not found", route)
		handlers.RespondNotFound(w, msgCartNotFound)

	case errors.Is(err, cartService.ErrProductNotFound):
		h.logger.Warn("%s - Product not found", route)
		handlers.RespondNotFound(w, msgProductNotFound)

	case errors.Is(err, cartService.ErrNotForSale):
		h.logger.Warn("%s - Product is not for sale", route)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotForSale)

	case errors.Is(err, cartService.ErrEmptyCart):
		h.logger.Warn("%s - Cart is empty", route)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgEmptyCart)

	case errors.Is(err, cartService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
