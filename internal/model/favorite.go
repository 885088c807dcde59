package model

import "time"

// Favorite marks a product as favorited by a user, at most once per pair
type Favorite struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_favorite_user_product"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
}
