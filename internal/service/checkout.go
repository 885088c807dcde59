package service

import (
	"storefront-service/internal/model"

	"gorm.io/gorm"
)

// Checkout converts the user's cart into a placed order inside a single
// transaction: validate stock, snapshot prices onto order items, decrement
// stock and empty the cart. Any failure rolls back every write.
//
// The stock decrement is conditional (stock >= quantity in the WHERE
// clause), so two concurrent checkouts racing for the same units cannot
// both pass; the loser observes zero affected rows and the whole
// transaction aborts. Stock can never go negative.
func Checkout(db *gorm.DB, userID uint) (*model.Order, error) {
	var order model.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []model.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// All-or-nothing validation: any understocked line aborts checkout
		total := 0
		for _, item := range items {
			if item.Product.Stock < item.Quantity {
				return &InsufficientStockError{ProductID: item.ProductID, ProductName: item.Product.Name}
			}
			total += item.Product.Price * item.Quantity
		}

		order = model.Order{
			UserID: userID,
			Total:  total,
			Status: model.OrderStatusPlaced,
		}
		for _, item := range items {
			order.Items = append(order.Items, model.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			res := tx.Model(&model.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			// Stock changed between validation and decrement; abort
			if res.RowsAffected == 0 {
				return &InsufficientStockError{ProductID: item.ProductID, ProductName: item.Product.Name}
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
