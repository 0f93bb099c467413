package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	ChatService ChatServiceConfig `mapstructure:"chat_service"`
	AuthService AuthServiceConfig `mapstructure:"auth_service"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	LogLevel    string            `mapstructure:"log_level"`
}

// ServerConfig holds the gateway listener configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// ChatServiceConfig points at the remote emotion-aware chat collaborator.
// The default base URL is the fixed local-development port; deployments
// behind the same origin as the renderer override it.
type ChatServiceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuthServiceConfig points at the remote registration collaborator.
type AuthServiceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig bounds authentication attempts per client IP.
type RateLimitConfig struct {
	AuthPerMinute int `mapstructure:"auth_per_minute"`
	AuthBurst     int `mapstructure:"auth_burst"`
}

// Load loads the configuration from config.yaml. CONFIG_PATH overrides the
// file location; missing keys fall back to defaults suitable for local use.
func Load() (*Config, error) {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("chat_service.base_url", "http://localhost:10000")
	viper.SetDefault("chat_service.timeout", 30*time.Second)
	viper.SetDefault("auth_service.base_url", "http://localhost:10000")
	viper.SetDefault("auth_service.timeout", 10*time.Second)
	viper.SetDefault("rate_limit.auth_per_minute", 30)
	viper.SetDefault("rate_limit.auth_burst", 10)
	viper.SetDefault("log_level", "info")

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and overrides still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
