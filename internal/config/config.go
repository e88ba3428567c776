package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL connection settings.
//
// Two shapes are supported: a full DATABASE_URL used verbatim, or a
// Supabase project reference from which a direct and a pooled connection
// string are derived. Strategy selection between the two derived strings
// lives in the database package.
type DatabaseConfig struct {
	URL string

	ProjectRef         string
	Password           string
	PoolerRegion       string
	UsePooler          bool
	UseDirect          bool
	UseTransactionMode bool

	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for any S3-compatible backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Env      string
	Database DatabaseConfig
	MinIO    MinIOConfig
}

// Development reports whether the app runs in development mode.
// Error responses carry stack traces only in this mode.
func (c *AppConfig) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Env:     getEnv("APP_ENV", "production"),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			ProjectRef:         getEnv("SUPABASE_PROJECT_REF", ""),
			Password:           getEnv("SUPABASE_DB_PASSWORD", ""),
			PoolerRegion:       getEnv("SUPABASE_POOLER_REGION", "us-east-1"),
			UsePooler:          getEnvBool("SUPABASE_USE_POOLER", false),
			UseDirect:          getEnvBool("SUPABASE_USE_DIRECT", false),
			UseTransactionMode: getEnvBool("SUPABASE_USE_TRANSACTION_MODE", true),
			SSLMode:            getEnv("DB_SSLMODE", "require"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
