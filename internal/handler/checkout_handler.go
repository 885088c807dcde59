package handler

import (
	"errors"
	"fmt"
	"net/http"

	"storefront-service/internal/middleware"
	"storefront-service/internal/service"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Checkout converts the authenticated user's cart into an order and
// returns the confirmation URL. No payment capture happens here; order
// persistence is the terminal action.
func Checkout(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	order, err := service.Checkout(database.GetDB(), userID)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			prometheus.RecordCheckout("empty_cart")
			log.Warn("Checkout attempted with empty cart", zap.Uint("user_id", userID))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cart is empty"})
		case errors.As(err, &stockErr):
			prometheus.RecordCheckout("insufficient_stock")
			log.Warn("Checkout failed on stock validation",
				zap.Uint("user_id", userID),
				zap.Uint("product_id", stockErr.ProductID),
				zap.String("product_name", stockErr.ProductName))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": fmt.Sprintf("Not enough stock for %s", stockErr.ProductName),
			})
		default:
			prometheus.RecordCheckout("error")
			log.Error("Checkout failed", zap.Uint("user_id", userID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Checkout failed"})
		}
	}

	prometheus.RecordCheckout("placed")
	log.Info("Order placed",
		zap.Uint("user_id", userID),
		zap.Uint("order_id", order.ID),
		zap.Int("total", order.Total),
		zap.Int("items", len(order.Items)))

	return c.JSON(http.StatusOK, echo.Map{
		"order_id": order.ID,
		"url":      fmt.Sprintf("/orders/%d", order.ID),
	})
}
