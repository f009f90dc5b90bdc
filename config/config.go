package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	OAuth      OAuthConfig
	Cloudinary CloudinaryConfig
	Firebase   FirebaseConfig
	Cashfree   CashfreeConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type FirebaseConfig struct {
	ServiceAccountPath string
}

// CashfreeConfig for the tax payment gateway.
// ReturnBaseURL is the public site origin - the citizen lands on
// ReturnBaseURL + /tax-payment/receipt?order_id=... after checkout.
// NotifyBaseURL is this API's public origin - Cashfree posts webhooks to
// NotifyBaseURL + /api/v1/webhooks/tax-payment.
type CashfreeConfig struct {
	BaseURL       string
	AppID         string
	SecretKey     string
	APIVersion    string
	WebhookSecret string
	ReturnBaseURL string
	NotifyBaseURL string
}

func Load() *Config {
	// Optional .env for local development; real deployments set the environment.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8088"),
			Env:          envOr("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             envOr("DATABASE_DSN", "gramseva:gramseva@tcp(localhost:3306)/gramseva?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    envOrInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    envOrInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret:  envOr("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: envOr("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  time.Hour,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "gramseva",
		},
		OAuth: OAuthConfig{
			GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Firebase: FirebaseConfig{
			ServiceAccountPath: os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"),
		},
		Cashfree: CashfreeConfig{
			BaseURL:       envOr("CASHFREE_BASE_URL", "https://sandbox.cashfree.com/pg"),
			AppID:         os.Getenv("CASHFREE_APP_ID"),
			SecretKey:     os.Getenv("CASHFREE_SECRET_KEY"),
			APIVersion:    envOr("CASHFREE_API_VERSION", "2023-08-01"),
			WebhookSecret: os.Getenv("CASHFREE_WEBHOOK_SECRET"),
			ReturnBaseURL: envOr("SITE_BASE_URL", "http://localhost:5173"),
			NotifyBaseURL: envOr("API_BASE_URL", "http://localhost:8088"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
