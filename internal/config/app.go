package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type RateSource struct {
	BaseURL string `mapstructure:"base_url"`
}

type Cache struct {
	// Zero disables the periodic flush job entirely.
	FlushIntervalSeconds int `mapstructure:"flush_interval_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	RateSource RateSource `mapstructure:"rate_source"`
	Cache      Cache      `mapstructure:"cache"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("cache.flush_interval_seconds", 0)
	viper.SetDefault("logging.level", "info")

	_ = viper.BindEnv("http_server.port", "HTTP_SERVER_PORT")
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = viper.BindEnv("rate_source.base_url", "RATE_SOURCE_BASE_URL")
	_ = viper.BindEnv("cache.flush_interval_seconds", "CACHE_FLUSH_INTERVAL_SECONDS")
	_ = viper.BindEnv("logging.level", "LOGGING_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
