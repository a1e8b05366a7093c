package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type StorageConfig struct {
	// StaticDir is the root of the upload buckets; models and thumbnails
	// live in fixed subdirectories so stored /static/... URLs stay valid.
	StaticDir    string
	FrontendDist string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	SecretKey   string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8100"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 3254),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "homedesign"),
		},
		Storage: StorageConfig{
			StaticDir:    getEnv("STATIC_DIR", "./static"),
			FrontendDist: getEnv("FRONTEND_DIST", "./frontend_dist"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			SecretKey:   getEnv("SECRET_KEY", "a_very_secret_key_that_should_be_changed"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Storage.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR is required")
	}

	return nil
}

// ModelsDir is the bucket directory for uploaded 3D model files.
func (s StorageConfig) ModelsDir() string {
	return filepath.Join(s.StaticDir, "models")
}

// ThumbnailsDir is the bucket directory for uploaded thumbnail images.
func (s StorageConfig) ThumbnailsDir() string {
	return filepath.Join(s.StaticDir, "thumbnails")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
