package handler

import (
	"log/slog"
	"net/http"

	"chow/internal/delivery/http/middleware"
	"chow/internal/delivery/http/response"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant and menu handlers.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// CreateRestaurantRequest represents the request body for registering a restaurant.
type CreateRestaurantRequest struct {
	Name          string `json:"name" validate:"required,max=120"`
	TaxFee        int64  `json:"tax_fee" validate:"min=0"`
	AdditionalFee int64  `json:"additional_fee" validate:"min=0"`
}

// AddFoodItemRequest represents the request body for adding a menu item.
type AddFoodItemRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Category string `json:"category" validate:"required,max=60"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Supply   int    `json:"supply" validate:"min=0"`
}

// UpdateFoodItemRequest represents the request body for editing a menu item.
type UpdateFoodItemRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Category string `json:"category" validate:"required,max=60"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Supply   int    `json:"supply" validate:"min=0"`
}

// ApproveRestaurantRequest represents an admin decision on a pending restaurant.
type ApproveRestaurantRequest struct {
	Approve bool `json:"approve"`
}

// CreateRestaurant registers a restaurant owned by the calling seller.
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	var req CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	restaurant, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), &usecase.CreateRestaurantInput{
		SellerID:      actor.ID,
		Name:          req.Name,
		TaxFee:        req.TaxFee,
		AdditionalFee: req.AdditionalFee,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant created successfully")
}

// AddFoodItem adds a menu item to a restaurant the calling seller owns.
func (h *RestaurantHandler) AddFoodItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	var req AddFoodItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.restaurantUC.AddFoodItem(c.Request().Context(), &usecase.AddFoodItemInput{
		SellerID:     actor.ID,
		RestaurantID: restaurantID,
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Supply:       req.Supply,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Food item added successfully")
}

// UpdateFoodItem edits a menu item on a restaurant the calling seller owns.
func (h *RestaurantHandler) UpdateFoodItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	foodItemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food item id")
	}

	var req UpdateFoodItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.restaurantUC.UpdateFoodItem(c.Request().Context(), &usecase.UpdateFoodItemInput{
		SellerID:   actor.ID,
		FoodItemID: foodItemID,
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		Supply:     req.Supply,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Food item updated successfully")
}

// ListRestaurants returns every confirmed restaurant.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// ListOwnRestaurants returns the restaurants owned by the calling seller.
func (h *RestaurantHandler) ListOwnRestaurants(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	restaurants, err := h.restaurantUC.ListOwnRestaurants(c.Request().Context(), actor.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// ListMenu returns a restaurant's menu.
func (h *RestaurantHandler) ListMenu(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	items, err := h.restaurantUC.ListMenu(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Menu retrieved successfully")
}

// ApproveRestaurant handles an admin decision on a pending restaurant.
func (h *RestaurantHandler) ApproveRestaurant(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	var req ApproveRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	restaurant, err := h.restaurantUC.ApproveRestaurant(c.Request().Context(), &usecase.ApproveRestaurantInput{
		RestaurantID: restaurantID,
		Approve:      req.Approve,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant approval updated")
}
