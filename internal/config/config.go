package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds object storage settings for the S3-compatible backend
// and the upload gateway built on top of it.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is the externally reachable base for durable asset URLs,
	// e.g. https://assets.example.com. Asset URLs are <PublicBaseURL>/<bucket>/<key>.
	PublicBaseURL string
	// MaxEncodedBytes is the client-side ceiling for one encoded file payload.
	MaxEncodedBytes int64
}

// AuthConfig holds settings for the external session provider and the
// route-protection middleware.
type AuthConfig struct {
	// ProviderURL is the base URL of the external auth provider used to
	// validate session tokens.
	ProviderURL string
	// SessionCookie is the cookie name carrying the opaque session token.
	SessionCookie string
	// ProtectedPrefix is the path prefix gated by the session middleware.
	ProtectedPrefix string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	LogLevel  string
	LogFormat string
	Database  DatabaseConfig
	Storage   StorageConfig
	Auth      AuthConfig
}

// DefaultMaxEncodedBytes caps one encoded file payload at 10 MiB.
const DefaultMaxEncodedBytes = 10 << 20

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:   getEnv("APP_HOST", "localhost:8080"),
		Port:      getEnv("PORT", "8080"), // default only for non-sensitive value
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("MINIO_ENDPOINT", ""),
			AccessKey:       getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:       getEnv("MINIO_SECRET_KEY", ""),
			Bucket:          getEnv("MINIO_BUCKET", ""),
			UseSSL:          getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL:   getEnv("STORAGE_PUBLIC_BASE_URL", ""),
			MaxEncodedBytes: getEnvInt64("UPLOAD_MAX_ENCODED_BYTES", DefaultMaxEncodedBytes),
		},
		Auth: AuthConfig{
			ProviderURL:     getEnv("AUTH_PROVIDER_URL", ""),
			SessionCookie:   getEnv("AUTH_SESSION_COOKIE", "session_token"),
			ProtectedPrefix: getEnv("AUTH_PROTECTED_PREFIX", "/admin"),
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

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
