package configs

import (
	"log"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the default back-office account on first boot.
func SeedAdmin(cfg *Config) error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		FullName: "Administrador",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
