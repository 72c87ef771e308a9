package entity

import (
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"` // preload for display name

	Quantity int `gorm:"not null" json:"quantity"`
	// UnitPrice is captured at order time, later menu price changes do not touch it
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
}
