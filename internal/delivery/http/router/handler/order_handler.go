package handler

import (
	"log/slog"
	"net/http"

	"chow/internal/delivery/http/middleware"
	"chow/internal/delivery/http/response"
	"chow/internal/domain/entity"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	FoodItemID uuid.UUID `json:"food_item_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	RestaurantID    uuid.UUID          `json:"restaurant_id" validate:"required"`
	DeliveryAddress string             `json:"delivery_address" validate:"required,max=255"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents a requested lifecycle transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ClaimOrderRequest carries the scanned pickup QR code payload.
type ClaimOrderRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CreateOrder places an order for the calling customer.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		CustomerID:      actor.ID,
		RestaurantID:    req.RestaurantID,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// GetOrder retrieves an order visible to the caller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders returns the orders visible to the caller. An optional status
// query parameter narrows the listing to one lifecycle state.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	if status := c.QueryParam("status"); status != "" {
		orders, err := h.orderUC.ListOrdersByStatus(c.Request().Context(), actor, entity.OrderStatus(status))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus drives one lifecycle transition on an order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), &usecase.UpdateOrderStatusInput{
		Actor:   actor,
		OrderID: orderID,
		Target:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// PickupQR returns the pickup QR code image for an order the seller owns.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.orderUC.PickupQR(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ClaimOrder lets the calling courier claim a ready order by its QR payload.
func (h *OrderHandler) ClaimOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	var req ClaimOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.ClaimOrder(c.Request().Context(), &usecase.ClaimOrderInput{
		Actor:  actor,
		QRData: req.QRData,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order claimed successfully")
}
