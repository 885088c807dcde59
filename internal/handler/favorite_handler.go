package handler

import (
	"errors"
	"net/http"

	"storefront-service/internal/middleware"
	"storefront-service/internal/service"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListFavorites handles retrieving the authenticated user's favorites
func ListFavorites(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	favorites, err := service.ListFavorites(database.GetDB(), userID)
	if err != nil {
		log.Error("Failed to list favorites", zap.Uint("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve favorites"})
	}

	return c.JSON(http.StatusOK, favorites)
}

// ToggleFavorite flips the favorite state of a product for the user
func ToggleFavorite(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	var req struct {
		ProductID uint `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	isFavorite, err := service.ToggleFavorite(database.GetDB(), userID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to toggle favorite",
			zap.Uint("user_id", userID),
			zap.Uint("product_id", req.ProductID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to toggle favorite"})
	}

	message := "Removed from favorites"
	state := "removed"
	if isFavorite {
		message = "Added to favorites"
		state = "added"
	}
	prometheus.RecordFavoriteToggle(state)

	log.Info("Favorite toggled",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", req.ProductID),
		zap.Bool("is_favorite", isFavorite))

	return c.JSON(http.StatusOK, echo.Map{
		"message":     message,
		"is_favorite": isFavorite,
	})
}
