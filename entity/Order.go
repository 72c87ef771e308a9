package entity

import (
	"gorm.io/gorm"
)

// Order kinds as submitted by the client.
const (
	KindProprio  = "proprio"  // delivery by the restaurant itself
	KindParceiro = "parceiro" // delivery by a partner courier
	KindReserva  = "reserva"  // table reservation for a time slot
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"` // preload for the admin listing

	Kind string `gorm:"not null" json:"kind"`
	// Slot is set iff Kind == KindReserva ("19".."22")
	Slot string `json:"slot,omitempty"`

	// snapshot of the customer's address at creation time
	DeliveryAddress string `json:"deliveryAddress"`

	Total  float64 `gorm:"type:decimal(10,2)" json:"total"`
	Status string  `gorm:"not null;default:pending" json:"status"`

	Lines []OrderLine `gorm:"constraint:OnDelete:CASCADE" json:"lines"`
}
