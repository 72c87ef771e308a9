package repository

import (
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GET /catalog
func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// full-field replace, PUT semantics
func (r *MenuRepository) Update(id uint, m *entity.MenuItem) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(map[string]any{
		"name":        m.Name,
		"description": m.Description,
		"price":       m.Price,
		"chef":        m.Chef,
		"image_url":   m.ImageURL,
	}).Error
}

// soft delete, historical order lines keep resolving the item
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
