package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-service/internal/middleware"
	"storefront-service/internal/service"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CartAddRequest defines the structure for adding a product to the cart
type CartAddRequest struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// ListCart handles retrieving the authenticated user's cart
func ListCart(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	items, err := service.ListCartItems(database.GetDB(), userID)
	if err != nil {
		log.Error("Failed to list cart items", zap.Uint("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve cart"})
	}

	return c.JSON(http.StatusOK, items)
}

// AddToCart handles adding a product to the authenticated user's cart.
// Adding an already carted (product, size) merges by incrementing quantity.
func AddToCart(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	var req CartAddRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	err := service.AddToCart(database.GetDB(), userID, req.ProductID, req.Quantity, req.Size)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		case errors.Is(err, service.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Quantity must be at least 1"})
		case errors.As(err, &stockErr):
			log.Warn("Not enough stock to add to cart",
				zap.Uint("product_id", stockErr.ProductID),
				zap.Int("quantity", req.Quantity))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Not enough stock for " + stockErr.ProductName})
		default:
			log.Error("Failed to add to cart",
				zap.Uint("user_id", userID),
				zap.Uint("product_id", req.ProductID),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add to cart"})
		}
	}

	prometheus.RecordCartOperation("add")
	log.Info("Added to cart",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
		zap.String("size", req.Size))
	return c.JSON(http.StatusOK, echo.Map{"message": "Added to cart successfully"})
}

// UpdateCartItem handles setting the quantity of a cart item
func UpdateCartItem(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid cart item id"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	item, err := service.UpdateQuantity(database.GetDB(), userID, uint(itemID), req.Quantity)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Cart item not found"})
		case errors.Is(err, service.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Quantity must be at least 1"})
		case errors.As(err, &stockErr):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Not enough stock for " + stockErr.ProductName})
		default:
			log.Error("Failed to update cart item",
				zap.Uint("user_id", userID),
				zap.Uint64("cart_item_id", itemID),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update cart item"})
		}
	}

	prometheus.RecordCartOperation("update")
	log.Info("Cart item updated",
		zap.Uint("user_id", userID),
		zap.Uint("cart_item_id", item.ID),
		zap.Int("quantity", item.Quantity))
	return c.JSON(http.StatusOK, item)
}

// RemoveCartItem handles deleting a cart item
func RemoveCartItem(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid cart item id"})
	}

	if err := service.RemoveItem(database.GetDB(), userID, uint(itemID)); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Cart item not found"})
		}
		log.Error("Failed to remove cart item",
			zap.Uint("user_id", userID),
			zap.Uint64("cart_item_id", itemID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to remove cart item"})
	}

	prometheus.RecordCartOperation("remove")
	log.Info("Cart item removed",
		zap.Uint("user_id", userID),
		zap.Uint64("cart_item_id", itemID))
	return c.NoContent(http.StatusNoContent)
}
