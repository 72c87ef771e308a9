package repository

import (
	"time"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/mine — newest first, lines with their menu item.
// Menu items are loaded unscoped so soft-deleted dishes still resolve
// on historical orders.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Lines").
		Preload("Lines.MenuItem", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GET /orders/all — admin view with customer profile.
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("User").
		Preload("Lines").
		Preload("Lines.MenuItem", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// ---------------- Reservation capacity ----------------

// CountReservations counts non-canceled reservations for one slot on
// one calendar day. Runs outside any transaction, the check-then-insert
// sequence around it is racy and kept that way.
func (r *OrderRepository) CountReservations(date time.Time, slot string) (int64, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("kind = ? AND slot = ? AND status <> ?", entity.KindReserva, slot, entity.StatusCanceled).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&cnt).Error
	return cnt, err
}
