package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabaseURL       string
	DBConnectAttempts int

	// Session
	SessionMaxAge        int // 秒
	SessionRetentionDays int // 期限切れ後もこの日数は削除しない
	BcryptCost           int

	// Logging
	LogLevel string

	// Server
	ServerPort        string
	BaseURL           string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration

	// Cookie
	CookieSecure bool
	CookieDomain string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.BaseURL = getEnvString("BASE_URL", "http://localhost:8080")
	cfg.DBConnectAttempts = getEnvInt("DB_CONNECT_ATTEMPTS", 5)
	cfg.SessionMaxAge = getEnvInt("SESSION_MAX_AGE", 1209600)
	cfg.SessionRetentionDays = getEnvInt("SESSION_RETENTION_DAYS", 0)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.ReadTimeout = getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second)
	cfg.ReadHeaderTimeout = getEnvDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second)
	cfg.WriteTimeout = getEnvDuration("HTTP_WRITE_TIMEOUT", 15*time.Second)
	cfg.IdleTimeout = getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	cfg.CookieSecure = strings.HasPrefix(cfg.BaseURL, "https://")
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	if cfg.SessionMaxAge <= 0 {
		return nil, fmt.Errorf("SESSION_MAX_AGE must be positive: %d", cfg.SessionMaxAge)
	}
	if cfg.SessionRetentionDays < 0 {
		return nil, fmt.Errorf("SESSION_RETENTION_DAYS must not be negative: %d", cfg.SessionRetentionDays)
	}

	return cfg, nil
}

// SessionMaxAgeDuration はSessionMaxAgeをtime.Durationで返す。
func (c *Config) SessionMaxAgeDuration() time.Duration {
	return time.Duration(c.SessionMaxAge) * time.Second
}

// SessionRetention は期限切れセッションを保持する期間を返す。
func (c *Config) SessionRetention() time.Duration {
	return time.Duration(c.SessionRetentionDays) * 24 * time.Hour
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
