package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
	Log     LogConfig
}

type AppConfig struct {
	Port   string
	Env    string
	Locale string
}

// BackendConfig points the gateway at the dental REST backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig selects where the session token and user record are persisted.
type SessionConfig struct {
	Store     string
	File      string
	KeyPrefix string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

const (
	SessionStoreFile  = "file"
	SessionStoreRedis = "redis"
)

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file (if present) and the process environment.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("UI_LOCALE", "en")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:8000")
	v.SetDefault("BACKEND_TIMEOUT", "15s")
	v.SetDefault("SESSION_STORE", SessionStoreFile)
	v.SetDefault("SESSION_FILE", ".ads-session.json")
	v.SetDefault("SESSION_KEY_PREFIX", "ads:session:")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")

	// A missing .env is fine; the environment and defaults still apply.
	_ = v.ReadInConfig()

	timeout, err := time.ParseDuration(v.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		timeout = 15 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:   v.GetString("APP_PORT"),
			Env:    v.GetString("APP_ENV"),
			Locale: v.GetString("UI_LOCALE"),
		},
		Backend: BackendConfig{
			BaseURL: v.GetString("BACKEND_BASE_URL"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			Store:     v.GetString("SESSION_STORE"),
			File:      v.GetString("SESSION_FILE"),
			KeyPrefix: v.GetString("SESSION_KEY_PREFIX"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}
