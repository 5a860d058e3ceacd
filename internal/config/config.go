package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Social SocialConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// SocialConfig holds social identity provider settings. GoogleClientID is
// optional (audience pinning is skipped when empty); AppleClientID is
// required for Apple logins and its absence is a hard configuration error
// surfaced at verification time.
type SocialConfig struct {
	GoogleClientID string        `mapstructure:"google_client_id"`
	AppleClientID  string        `mapstructure:"apple_client_id"`
	KeysTimeout    time.Duration `mapstructure:"keys_timeout"`
	KeysTTL        time.Duration `mapstructure:"keys_ttl"`
}

// S3Config holds media storage settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxImageMB    int64  `mapstructure:"max_image_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the ENTREGA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ENTREGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "entrega")
	v.SetDefault("db.password", "entrega_secret")
	v.SetDefault("db.name", "entrega_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "entrega")

	// Social defaults
	v.SetDefault("social.google_client_id", "")
	v.SetDefault("social.apple_client_id", "")
	v.SetDefault("social.keys_timeout", "5s")
	v.SetDefault("social.keys_ttl", "1h")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "entrega-media")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_image_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "ENTREGA_SERVER_PORT",
		"server.read_timeout":     "ENTREGA_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "ENTREGA_SERVER_WRITE_TIMEOUT",
		"server.environment":      "ENTREGA_SERVER_ENVIRONMENT",
		"db.host":                 "ENTREGA_DB_HOST",
		"db.port":                 "ENTREGA_DB_PORT",
		"db.user":                 "ENTREGA_DB_USER",
		"db.password":             "ENTREGA_DB_PASSWORD",
		"db.name":                 "ENTREGA_DB_NAME",
		"db.sslmode":              "ENTREGA_DB_SSLMODE",
		"db.max_open":             "ENTREGA_DB_MAX_OPEN",
		"db.max_idle":             "ENTREGA_DB_MAX_IDLE",
		"jwt.secret":              "ENTREGA_JWT_SECRET",
		"jwt.access_expiry":       "ENTREGA_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":      "ENTREGA_JWT_REFRESH_EXPIRY",
		"jwt.issuer":              "ENTREGA_JWT_ISSUER",
		"social.google_client_id": "ENTREGA_SOCIAL_GOOGLE_CLIENT_ID",
		"social.apple_client_id":  "ENTREGA_SOCIAL_APPLE_CLIENT_ID",
		"social.keys_timeout":     "ENTREGA_SOCIAL_KEYS_TIMEOUT",
		"social.keys_ttl":         "ENTREGA_SOCIAL_KEYS_TTL",
		"s3.region":               "ENTREGA_S3_REGION",
		"s3.bucket":               "ENTREGA_S3_BUCKET",
		"s3.endpoint":             "ENTREGA_S3_ENDPOINT",
		"s3.access_key":           "ENTREGA_S3_ACCESS_KEY",
		"s3.secret_key":           "ENTREGA_S3_SECRET_KEY",
		"s3.max_image_mb":         "ENTREGA_S3_MAX_IMAGE_MB",
		"s3.presign_expiry":       "ENTREGA_S3_PRESIGN_EXPIRY",
		"log.level":               "ENTREGA_LOG_LEVEL",
		"log.format":              "ENTREGA_LOG_FORMAT",
		"cors.allowed_origins":    "ENTREGA_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ENTREGA_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ENTREGA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Social = SocialConfig{
		GoogleClientID: v.GetString("social.google_client_id"),
		AppleClientID:  v.GetString("social.apple_client_id"),
		KeysTimeout:    v.GetDuration("social.keys_timeout"),
		KeysTTL:        v.GetDuration("social.keys_ttl"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxImageMB:    v.GetInt64("s3.max_image_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
