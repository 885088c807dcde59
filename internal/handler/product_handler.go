package handler

import (
	"net/http"
	"strconv"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts handles retrieving the catalog with optional filtering,
// newest first
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	var products []model.Product

	// Handle query parameters for filtering
	query := db

	// Substring search over name and description
	if q := c.QueryParam("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
		log.Info("Filtering products by search term", zap.String("q", q))
	}

	if category := c.QueryParam("category"); category != "" {
		query = query.Where("category = ?", category)
		log.Info("Filtering products by category", zap.String("category", category))
	}

	if isNew := c.QueryParam("is_new"); isNew != "" {
		if v, err := strconv.ParseBool(isNew); err == nil {
			query = query.Where("is_new = ?", v)
		} else {
			log.Warn("Invalid is_new parameter", zap.String("value", isNew))
		}
	}

	if isFeatured := c.QueryParam("is_featured"); isFeatured != "" {
		if v, err := strconv.ParseBool(isFeatured); err == nil {
			query = query.Where("is_featured = ?", v)
		} else {
			log.Warn("Invalid is_featured parameter", zap.String("value", isFeatured))
		}
	}

	// Execute the query
	result := query.Order("created_at desc").Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil {
		log.Warn("Product not found",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(http.StatusOK, product)
}
