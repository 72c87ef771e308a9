package services

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService struct {
	Repo *repository.MenuRepository
}

func NewCatalogService(repo *repository.MenuRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func validateItem(m *entity.MenuItem) error {
	if strings.TrimSpace(m.Name) == "" {
		return validationf("name is required")
	}
	if m.Price <= 0 {
		return validationf("price must be positive")
	}
	return nil
}

func (s *CatalogService) Create(m *entity.MenuItem) error {
	if err := validateItem(m); err != nil {
		return err
	}
	if m.ImageURL == "" {
		m.ImageURL = entity.PlaceholderImage
	}
	return s.Repo.Create(m)
}

func (s *CatalogService) Update(id uint, m *entity.MenuItem) (*entity.MenuItem, error) {
	if err := validateItem(m); err != nil {
		return nil, err
	}
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Repo.Update(id, m); err != nil {
		return nil, err
	}
	return s.Repo.Get(id)
}

func (s *CatalogService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}

// ---------------- Image upload ----------------

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ImageFilename validates an upload and returns the generated name to
// store it under.
func (s *CatalogService) ImageFilename(originalName string, size int64) (string, error) {
	if size == 0 {
		return "", validationf("no file sent")
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedImageExts[ext] {
		return "", validationf("only JPG and PNG files are allowed")
	}
	return uuid.NewString() + ext, nil
}
