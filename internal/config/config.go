package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Skotchmaster/inventory_service/internal/models"
	pkgconfig "github.com/Skotchmaster/inventory_service/pkg/config"
	"github.com/Skotchmaster/inventory_service/pkg/db"
)

type Config struct {
	SERVER_PORT int

	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string

	ES_URL      string
	ES_USER     string
	ES_PASSWORD string
	ES_INDEX    string

	KAFKA_BROKERS []string
	LOG_LEVEL     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		SERVER_PORT: pkgconfig.EnvIntDefault("SERVER_PORT", 8080),

		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     pkgconfig.EnvDefault("DB_PORT", "5432"),
		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_NAME:     os.Getenv("DB_NAME"),

		ES_URL:      os.Getenv("ES_URL"),
		ES_USER:     os.Getenv("ES_USER"),
		ES_PASSWORD: os.Getenv("ES_PASSWORD"),
		ES_INDEX:    pkgconfig.EnvDefault("ES_INDEX", "product"),

		KAFKA_BROKERS: pkgconfig.CSV(os.Getenv("KAFKA_BROKERS")),
		LOG_LEVEL:     pkgconfig.EnvDefault("LOG_LEVEL", "info"),
	}

	pkgconfig.MustNonEmpty(config.DB_HOST, "DB_HOST")
	pkgconfig.MustNonEmpty(config.DB_USER, "DB_USER")
	pkgconfig.MustNonEmpty(config.DB_NAME, "DB_NAME")

	return config, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}

func InitDB(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	database, err := db.Open(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return database, nil
}
