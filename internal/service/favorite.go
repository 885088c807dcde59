package service

import (
	"errors"

	"storefront-service/internal/model"

	"gorm.io/gorm"
)

// ToggleFavorite flips the favorite state of a product for the user and
// reports the resulting state. Toggling twice restores the original set.
func ToggleFavorite(db *gorm.DB, userID, productID uint) (bool, error) {
	var product model.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	var favorite model.Favorite
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&favorite).Error
	if err == nil {
		if err := db.Delete(&favorite).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	favorite = model.Favorite{UserID: userID, ProductID: productID}
	if err := db.Create(&favorite).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListFavorites returns the user's favorites with product snapshots preloaded
func ListFavorites(db *gorm.DB, userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := db.Preload("Product").Where("user_id = ?", userID).Order("created_at desc").Find(&favorites).Error
	return favorites, err
}
