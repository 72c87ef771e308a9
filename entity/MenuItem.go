package entity

import (
	"gorm.io/gorm"
)

// PlaceholderImage is used when an item is created without a picture.
const PlaceholderImage = "/uploads/placeholder.png"

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Chef        bool    `json:"chef"`
	ImageURL    string  `json:"imageUrl"`

	// historical lines keep pointing here even after a soft delete
	OrderLines []OrderLine `json:"-"`
}
