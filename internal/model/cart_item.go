package model

import "time"

// CartItem is one line of a user's cart. The composite unique index
// keeps at most one row per (user, product, size); concurrent adds for
// the same tuple merge by incrementing quantity via upsert. Size is an
// empty string when the product has no size variants so the index stays
// portable across engines (NULLs never collide in unique indexes).
type CartItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_product_size"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_user_product_size"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Size      string    `json:"size" gorm:"type:varchar(20);not null;default:'';uniqueIndex:idx_cart_user_product_size"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
