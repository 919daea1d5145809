package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Data stores
	Postgres PostgresConfig
	Redis    RedisConfig

	// Auth
	JWT JWTConfig

	// Gateway specifics
	App      AppConfig
	Analysis AnalysisConfig
	Webhook  WebhookConfig
	Upload   UploadConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the connection string for database/sql.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// AppConfig holds this gateway's own identity. BaseURL is the public URL
// providers call back into, used as the webhook callback target.
type AppConfig struct {
	BaseURL string
}

// AnalysisConfig holds the downstream analysis service settings.
type AnalysisConfig struct {
	BaseURL string
}

type WebhookConfig struct {
	AllowedIPs      []string
	RateLimitPerMin int
}

// UploadConfig bounds manually uploaded codebase archives.
type UploadConfig struct {
	MaxArchiveBytes int64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		// Full DSN override takes precedence over individual fields.
		parsed, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("invalid database_url: %w", err)
		}
		cfg.Postgres = parsed
	}

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}

	// Gateway identity + downstream analysis service
	cfg.App.BaseURL = strings.TrimSuffix(viper.GetString("app.base_url"), "/")
	if appURL := viper.GetString("app_url"); appURL != "" {
		cfg.App.BaseURL = strings.TrimSuffix(appURL, "/")
	}
	cfg.Analysis.BaseURL = strings.TrimSuffix(viper.GetString("analysis.base_url"), "/")
	if analysisURL := viper.GetString("analysis_url"); analysisURL != "" {
		cfg.Analysis.BaseURL = strings.TrimSuffix(analysisURL, "/")
	}
	if cfg.Analysis.BaseURL == "" {
		return nil, fmt.Errorf("analysis.base_url is required")
	}

	// Webhook
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	// Upload
	cfg.Upload.MaxArchiveBytes = viper.GetInt64("upload.max_archive_bytes")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "codeatlas")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("upload.max_archive_bytes", int64(150*1024*1024)) // 150 MB
}
