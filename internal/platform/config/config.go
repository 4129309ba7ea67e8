package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is constructed once in main and
// passed by reference into every component that needs it.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Token signing
	SecretKey                string
	Algorithm                string
	AccessTokenExpireMinutes int
	RefreshTokenExpireDays   int

	// Session cookie
	SessionCookieName   string
	SessionCookieDomain string

	// CORS
	CORSOrigins []string

	// Rate limiting for the auth endpoints, in ulule/limiter format (e.g. "5-M")
	AuthRateLimit string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
}

// AccessTokenTTL returns the access token lifetime as a duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token lifetime as a duration.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpireDays) * 24 * time.Hour
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. It fails fast when the signing secret is missing or too short.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("ALGORITHM", "HS256")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	viper.SetDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	viper.SetDefault("SESSION_COOKIE_NAME", "user_session")
	viper.SetDefault("SESSION_COOKIE_DOMAIN", ".tajuwa.com")
	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SecretKey = viper.GetString("SECRET_KEY")
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters, got %d", len(cfg.SecretKey))
	}

	cfg.Algorithm = viper.GetString("ALGORITHM")
	if cfg.Algorithm != "HS256" && cfg.Algorithm != "HS384" && cfg.Algorithm != "HS512" {
		return nil, fmt.Errorf("unsupported ALGORITHM %q: only HMAC variants are supported", cfg.Algorithm)
	}

	cfg.AccessTokenExpireMinutes = viper.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")
	if cfg.AccessTokenExpireMinutes <= 0 {
		cfg.AccessTokenExpireMinutes = 30
		log.Printf("Warning: invalid ACCESS_TOKEN_EXPIRE_MINUTES. Defaulting to %d.\n", cfg.AccessTokenExpireMinutes)
	}

	cfg.RefreshTokenExpireDays = viper.GetInt("REFRESH_TOKEN_EXPIRE_DAYS")
	if cfg.RefreshTokenExpireDays <= 0 {
		cfg.RefreshTokenExpireDays = 7
		log.Printf("Warning: invalid REFRESH_TOKEN_EXPIRE_DAYS. Defaulting to %d.\n", cfg.RefreshTokenExpireDays)
	}

	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	cfg.SessionCookieDomain = viper.GetString("SESSION_COOKIE_DOMAIN")
	cfg.CORSOrigins = viper.GetStringSlice("CORS_ORIGINS")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}

	return cfg, nil
}
