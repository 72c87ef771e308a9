package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	UploadDir     string
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading config from environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "restaurante.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@restaurante.net"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin@123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
