package model

import "time"

// OrderStatusPlaced is the only status an order can have in this
// service; there is no cancellation or refund state machine.
const OrderStatusPlaced = "placed"

// Order is an immutable record of a completed checkout
type Order struct {
	ID        uint        `json:"id" gorm:"primarykey"`
	UserID    uint        `json:"user_id" gorm:"not null;index"`
	Total     int         `json:"total" gorm:"not null"`
	Status    string      `json:"status" gorm:"type:varchar(20);not null;default:'placed'"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is one line of an order. Price is the unit price captured
// at checkout time and never follows later catalog price changes.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     int       `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
