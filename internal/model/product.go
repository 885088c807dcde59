package model

import "time"

// Product represents a catalog item. Price is in integer yen and stock
// must never go negative; the checkout workflow decrements it with a
// conditional update.
type Product struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       int       `json:"price" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	Category    string    `json:"category" gorm:"type:varchar(100);index"`
	IsNew       bool      `json:"is_new" gorm:"default:false"`
	IsFeatured  bool      `json:"is_featured" gorm:"default:false"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(512)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
