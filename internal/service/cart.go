package service

import (
	"errors"

	"storefront-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToCart puts quantity units of a product into the user's cart. When a
// row for the same (user, product, size) tuple already exists the upsert
// increments its quantity instead of creating a duplicate, which keeps
// concurrent adds merge-safe.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int, size string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	var product model.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if product.Stock < quantity {
		return &InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
	}

	item := model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(&item).Error
}

// UpdateQuantity sets the quantity of a cart item owned by the user.
// Quantities below 1 are rejected; the caller must remove the item instead.
func UpdateQuantity(db *gorm.DB, userID, cartItemID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var item model.CartItem
	err := db.Preload("Product").Where("id = ? AND user_id = ?", cartItemID, userID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if item.Product.Stock < quantity {
		return nil, &InsufficientStockError{ProductID: item.ProductID, ProductName: item.Product.Name}
	}

	item.Quantity = quantity
	if err := db.Model(&model.CartItem{}).Where("id = ?", item.ID).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes a cart item owned by the user
func RemoveItem(db *gorm.DB, userID, cartItemID uint) error {
	res := db.Where("id = ? AND user_id = ?", cartItemID, userID).Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ListCartItems returns the user's cart with product snapshots preloaded
func ListCartItems(db *gorm.DB, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := db.Preload("Product").Where("user_id = ?", userID).Order("created_at").Find(&items).Error
	return items, err
}
