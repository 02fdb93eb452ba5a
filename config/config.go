package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port    string `mapstructure:"port"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"server"`
	Database struct {
		URI         string        `mapstructure:"uri"`
		Name        string        `mapstructure:"name"`
		Timeout     time.Duration `mapstructure:"timeout"`
		AutoMigrate bool          `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	JWT    JWTConfig  `mapstructure:"jwt"`
	Auth   AuthConfig `mapstructure:"auth"`
	Upload struct {
		Dir     string `mapstructure:"dir"`
		MaxSize int64  `mapstructure:"max_size"`
	} `mapstructure:"upload"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// JWTConfig holds the token signing settings. An empty SecretKey is allowed at
// load time; token operations report it per request.
type JWTConfig struct {
	SecretKey       string        `mapstructure:"secret_key"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

type AuthConfig struct {
	BcryptCost         int           `mapstructure:"bcrypt_cost"`
	MaxLoginAttempts   int           `mapstructure:"max_login_attempts"`
	LoginAttemptWindow time.Duration `mapstructure:"login_attempt_window"`
}

var defaults = map[string]any{
	"server.port":               "3000",
	"server.base_url":           "http://localhost:3000",
	"database.uri":              "mongodb://localhost:27017",
	"database.name":             "social",
	"database.timeout":          "10s",
	"database.auto_migrate":     true,
	"redis.enabled":             false,
	"redis.host":                "localhost",
	"redis.port":                "6379",
	"redis.password":            "",
	"redis.db":                  0,
	"jwt.secret_key":            "",
	"jwt.access_token_ttl":      "1h",
	"jwt.refresh_token_ttl":     "168h",
	"auth.bcrypt_cost":          10,
	"auth.max_login_attempts":   5,
	"auth.login_attempt_window": "15m",
	"upload.dir":                "public",
	"upload.max_size":           10 << 20,
	"log.level":                 "info",
	"log.format":                "json",
}

// Environment names kept for compatibility with existing deployments.
var aliases = map[string]string{
	"server.port":           "PORT",
	"database.uri":          "DB_CONNECT",
	"jwt.secret_key":        "TOKEN_SECRET",
	"jwt.access_token_ttl":  "TOKEN_EXPIRATION",
	"jwt.refresh_token_ttl": "REFRESH_TOKEN_EXPIRATION",
}

// LoadConfig reads config.yml from path (if present) and overlays the
// environment. SERVER_PORT style names work for every key.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range aliases {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}
