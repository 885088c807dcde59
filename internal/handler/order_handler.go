package handler

import (
	"net/http"

	"storefront-service/internal/middleware"
	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListOrders handles retrieving the authenticated user's order history,
// newest first
func ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	var orders []model.Order
	result := database.GetDB().Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Error("Failed to list orders", zap.Uint("user_id", userID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles retrieving a single order owned by the caller
func GetOrder(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	id := c.Param("id")
	var order model.Order
	result := database.GetDB().Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order)
	if result.Error != nil {
		log.Warn("Order not found",
			zap.String("order_id", id),
			zap.Uint("user_id", userID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
	}

	return c.JSON(http.StatusOK, order)
}
