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

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	Logger   *slog.Logger
}

// WalletHandler holds dependencies for wallet and payment handlers.
type WalletHandler struct {
	walletUC usecase.WalletUsecase
	logger   *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler.
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC: params.WalletUC,
		logger:   params.Logger,
	}
}

// TopUpRequest represents the request body for adding funds.
type TopUpRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// PayOrderRequest represents the request body for paying an order.
type PayOrderRequest struct {
	Method string `json:"method" validate:"required,oneof=wallet online"`
}

// GetWallet returns the caller's wallet.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	wallet, err := h.walletUC.GetWallet(c.Request().Context(), actor.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wallet, "Wallet retrieved successfully")
}

// TopUp credits funds to the caller's wallet.
func (h *WalletHandler) TopUp(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	var req TopUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid top-up input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	wallet, err := h.walletUC.TopUp(c.Request().Context(), &usecase.TopUpInput{
		UserID: actor.ID,
		Amount: req.Amount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wallet, "Top-up successful")
}

// PayOrder pays for an order awaiting payment.
func (h *WalletHandler) PayOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req PayOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.walletUC.PayForOrder(c.Request().Context(), &usecase.PayOrderInput{
		CustomerID: actor.ID,
		OrderID:    orderID,
		Method:     req.Method,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Payment recorded successfully")
}

// ListTransactions returns the caller's ledger rows, newest first.
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	transactions, err := h.walletUC.ListTransactions(c.Request().Context(), actor.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions, "Transactions retrieved successfully")
}
